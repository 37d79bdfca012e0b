package postgres

// SQL for the dashboard tables. Dates are selected as text so rows scan
// straight into the API's "2006-01-02" strings.

const jobSequenceName = "jobs"

const (
	jobColumns = `
			id, job_id, to_char(job_date, 'YYYY-MM-DD'), net_profit, expenses, mileage,
			receipts, payment_method, created_at, updated_at`

	queryLatestJobID = `SELECT job_id FROM jobs ORDER BY job_id DESC LIMIT 1`

	// queryPreviewJobID reads the allocator value and the highest job_id in
	// one row. Either column is NULL when unset.
	queryPreviewJobID = `
		SELECT
			(SELECT last_value FROM job_id_sequence WHERE name = $1),
			(SELECT job_id FROM jobs ORDER BY job_id DESC LIMIT 1)
	`

	// querySelectJobSequenceForUpdate serializes concurrent creates on the
	// single allocator row until the transaction ends.
	querySelectJobSequenceForUpdate = `
		SELECT last_value
		FROM job_id_sequence
		WHERE name = $1
		FOR UPDATE
	`

	queryInitJobSequenceRow = `
		INSERT INTO job_id_sequence (name, last_value, updated_at)
		VALUES ($1, NULL, $2)
		ON CONFLICT (name) DO NOTHING
	`

	queryAdvanceJobSequence = `
		UPDATE job_id_sequence
		SET last_value = $1, updated_at = $2
		WHERE name = $3
	`

	queryInsertJob = `
		INSERT INTO jobs (
			id, job_id, job_date, net_profit, expenses, mileage,
			receipts, payment_method, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	queryGetJob = `SELECT` + jobColumns + `
		FROM jobs
		WHERE id = $1
	`

	queryListJobs = `SELECT` + jobColumns + `
		FROM jobs
		ORDER BY job_date DESC, job_id DESC
	`

	queryListJobsBetween = `SELECT` + jobColumns + `
		FROM jobs
		WHERE job_date >= $1 AND job_date <= $2
		ORDER BY job_date ASC, job_id ASC
	`

	queryUpdateJob = `
		UPDATE jobs
		SET job_date = $2, net_profit = $3, expenses = $4, mileage = $5,
		    receipts = $6, payment_method = $7, updated_at = $8
		WHERE id = $1
		RETURNING job_id, created_at
	`

	queryDeleteJob = `DELETE FROM jobs WHERE id = $1`
)

const (
	expenseColumns = `
			id, to_char(expense_date, 'YYYY-MM-DD'), expense_time, receipt_number, business_name,
			total_price, items, receipts, created_at, updated_at`

	queryInsertExpense = `
		INSERT INTO expenses (
			id, expense_date, expense_time, receipt_number, business_name,
			total_price, items, receipts, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	queryGetExpense = `SELECT` + expenseColumns + `
		FROM expenses
		WHERE id = $1
	`

	queryListExpenses = `SELECT` + expenseColumns + `
		FROM expenses
		ORDER BY expense_date DESC, expense_time DESC
	`

	queryListExpensesBetween = `SELECT` + expenseColumns + `
		FROM expenses
		WHERE expense_date >= $1 AND expense_date <= $2
		ORDER BY expense_date ASC, expense_time ASC
	`

	queryUpdateExpense = `
		UPDATE expenses
		SET expense_date = $2, expense_time = $3, receipt_number = $4, business_name = $5,
		    total_price = $6, items = $7, receipts = $8, updated_at = $9
		WHERE id = $1
		RETURNING created_at
	`

	queryDeleteExpense = `DELETE FROM expenses WHERE id = $1`
)

const (
	queryInsertQuoteRequest = `
		INSERT INTO quote_requests (
			id, first_name, last_name, email, phone_number, service_type, message, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	quoteColumns = `
			id, first_name, last_name, email, phone_number, service_type, message, submitted_at`

	queryListQuoteRequests = `SELECT` + quoteColumns + `
		FROM quote_requests
		ORDER BY submitted_at DESC
	`

	queryListQuoteRequestsBetween = `SELECT` + quoteColumns + `
		FROM quote_requests
		WHERE submitted_at >= $1 AND submitted_at < $2
		ORDER BY submitted_at ASC
	`

	queryInsertReview = `
		INSERT INTO reviews (id, rating, name, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	queryListReviews = `
		SELECT id, rating, name, message, created_at
		FROM reviews
		ORDER BY created_at DESC
	`
)

const (
	queryGetEmployee = `
		SELECT uid, email, display_name, approved_at, approved_by
		FROM employees
		WHERE uid = $1
	`

	queryListEmployees = `
		SELECT uid, email, display_name, approved_at, approved_by
		FROM employees
		ORDER BY approved_at ASC
	`

	queryUpsertEmployee = `
		INSERT INTO employees (uid, email, display_name, approved_at, approved_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (uid) DO UPDATE SET
			email        = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			approved_at  = EXCLUDED.approved_at,
			approved_by  = EXCLUDED.approved_by
	`

	queryDeleteEmployee = `DELETE FROM employees WHERE uid = $1`

	// queryUpsertSignInAttempt keeps first_seen_at from the first attempt.
	queryUpsertSignInAttempt = `
		INSERT INTO sign_in_attempts (uid, email, display_name, provider_id, first_seen_at, last_sign_in_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (uid) DO UPDATE SET
			email           = EXCLUDED.email,
			display_name    = EXCLUDED.display_name,
			provider_id     = EXCLUDED.provider_id,
			last_sign_in_at = EXCLUDED.last_sign_in_at
		RETURNING first_seen_at
	`

	signInAttemptColumns = `
			a.uid, a.email, a.display_name, a.provider_id, a.first_seen_at, a.last_sign_in_at,
			EXISTS (SELECT 1 FROM employees e WHERE e.uid = a.uid)`

	queryGetSignInAttempt = `SELECT` + signInAttemptColumns + `
		FROM sign_in_attempts a
		WHERE a.uid = $1
	`

	queryListSignInAttempts = `SELECT` + signInAttemptColumns + `
		FROM sign_in_attempts a
		ORDER BY a.last_sign_in_at DESC
	`

	queryPruneSignInAttempts = `
		DELETE FROM sign_in_attempts a
		WHERE a.last_sign_in_at < $1
		  AND NOT EXISTS (SELECT 1 FROM employees e WHERE e.uid = a.uid)
	`
)

var requiredTables = []string{
	"jobs", "job_id_sequence", "expenses", "quote_requests", "reviews", "employees", "sign_in_attempts",
}

const queryTableExists = `
	SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_name = $1
	)
`
