package mocks

//go:generate mockery --name JobStore --srcpkg github.com/crystal-vistas/vistas-ops/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ExpenseStore --srcpkg github.com/crystal-vistas/vistas-ops/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name QuoteStore --srcpkg github.com/crystal-vistas/vistas-ops/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ReviewStore --srcpkg github.com/crystal-vistas/vistas-ops/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name AccessStore --srcpkg github.com/crystal-vistas/vistas-ops/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
