package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hartbuilt/project_finance_app/internal/apperrors"
	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	portsrepo "github.com/hartbuilt/project_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the row loaders
// run unchanged inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// snapshotReadOptions pins every query of one snapshot load to the same
// committed database state. Without the repeatable-read transaction a writer
// landing between the expense read and the split read could hand the
// normalizer a torn snapshot.
var snapshotReadOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// snapshotRepository implements the SnapshotRepository interface
type snapshotRepository struct {
	BaseRepository
}

// newSnapshotRepository creates a new snapshot repository
func newSnapshotRepository(db *pgxpool.Pool) portsrepo.SnapshotRepository {
	return &snapshotRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// NewRepositoryProvider wires all pgsql-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SnapshotRepo: newSnapshotRepository(dbPool),
	}
}

const projectColumns = `
	project_id, name, project_type, status,
	contracted_amount, original_estimated_costs, adjusted_estimated_costs,
	contingency_amount, contingency_percent, contingency_used,
	target_margin, minimum_margin, do_not_exceed
`

const estimateColumns = `
	estimate_id, project_id, status, total_amount, total_cost,
	contingency_percent, version_number, COALESCE(parent_estimate_id, ''),
	is_auto_generated
`

const lineItemColumns = `
	line_item_id, estimate_id, description, quantity,
	cost_per_unit, price_per_unit, sort_order
`

const quoteColumns = `
	quote_id, project_id, COALESCE(estimate_id, ''), vendor_name,
	category, status, quote_amount, client_amount, markup_amount
`

const expenseColumns = `
	expense_id, COALESCE(project_id, ''), kind, category,
	approval_status, amount, COALESCE(description, '')
`

const splitColumns = `
	split_id, parent_expense_id, project_id, split_amount, split_percentage
`

const changeOrderColumns = `
	change_order_id, project_id, COALESCE(description, ''), status,
	amount, client_amount, cost_impact,
	includes_contingency, contingency_billed_to_client
`

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID, &p.Name, &p.ProjectType, &p.Status,
		&p.ContractedAmount, &p.OriginalEstimatedCosts, &p.AdjustedEstimatedCosts,
		&p.ContingencyAmount, &p.ContingencyPercent, &p.ContingencyUsed,
		&p.TargetMargin, &p.MinimumMargin, &p.DoNotExceed,
	)
	return p, err
}

// GetProjectSnapshot loads one project with every record participating in its
// reconciliation, all inside a single repeatable-read transaction so the
// snapshot is internally consistent.
func (r *snapshotRepository) GetProjectSnapshot(ctx context.Context, projectID string) (*domain.ProjectSnapshot, error) {
	tx, err := r.Begin(ctx, snapshotReadOptions)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	snap, err := r.loadSnapshot(ctx, tx, projectID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *snapshotRepository) loadSnapshot(ctx context.Context, q querier, projectID string) (*domain.ProjectSnapshot, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1`

	project, err := scanProject(q.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying project %s: %w", projectID, err)
	}

	snap := domain.ProjectSnapshot{Project: project}

	if snap.Estimates, err = r.estimatesForProject(ctx, q, projectID); err != nil {
		return nil, err
	}
	if snap.Quotes, err = r.quotesForProject(ctx, q, projectID); err != nil {
		return nil, err
	}
	if snap.Expenses, snap.Splits, err = r.expensesForProject(ctx, q, projectID); err != nil {
		return nil, err
	}
	if snap.ChangeOrders, err = r.changeOrdersForProject(ctx, q, projectID); err != nil {
		return nil, err
	}

	return &snap, nil
}

// ListProjectSnapshots loads one snapshot per project for portfolio rollups.
// Each entity table is read once and bucketed by project in memory; all reads
// share one repeatable-read transaction.
func (r *snapshotRepository) ListProjectSnapshots(ctx context.Context) ([]domain.ProjectSnapshot, error) {
	tx, err := r.Begin(ctx, snapshotReadOptions)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	rows, err := tx.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY project_id`)
	if err != nil {
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	projects, err := scanProjects(rows)
	if err != nil {
		return nil, err
	}

	estimates, err := r.allEstimates(ctx, tx)
	if err != nil {
		return nil, err
	}
	quotes, err := scanQuery(ctx, tx,
		`SELECT `+quoteColumns+` FROM quotes ORDER BY quote_id`, scanQuotes, "quotes")
	if err != nil {
		return nil, err
	}
	expenses, err := scanQuery(ctx, tx,
		`SELECT `+expenseColumns+` FROM expenses ORDER BY expense_id`, scanExpenses, "expenses")
	if err != nil {
		return nil, err
	}
	splits, err := scanQuery(ctx, tx,
		`SELECT `+splitColumns+` FROM expense_splits ORDER BY split_id`, scanSplits, "expense splits")
	if err != nil {
		return nil, err
	}
	changeOrders, err := scanQuery(ctx, tx,
		`SELECT `+changeOrderColumns+` FROM change_orders ORDER BY change_order_id`, scanChangeOrders, "change orders")
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	estimatesByProject := bucketEstimates(estimates)
	quotesByProject := bucketQuotes(quotes)
	changeOrdersByProject := bucketChangeOrders(changeOrders)
	splitsByParent := bucketSplits(splits)

	snaps := make([]domain.ProjectSnapshot, len(projects))
	for i, p := range projects {
		snaps[i].Project = p
		snaps[i].Estimates = estimatesByProject[p.ProjectID]
		snaps[i].Quotes = quotesByProject[p.ProjectID]
		snaps[i].ChangeOrders = changeOrdersByProject[p.ProjectID]
		snaps[i].Expenses, snaps[i].Splits = projectExpenseSet(p.ProjectID, expenses, splitsByParent)
	}
	return snaps, nil
}

// SaveDerivedFinancials writes the engine's derived figures back onto the
// project row for consumers that read persisted values.
func (r *snapshotRepository) SaveDerivedFinancials(ctx context.Context, financials domain.ProjectFinancials) error {
	query := `
		UPDATE projects
		SET adjusted_estimated_costs = $2,
			current_margin = $3,
			current_margin_percent = $4,
			projected_margin = $5,
			available_contingency = $6,
			last_reconciled_at = NOW()
		WHERE project_id = $1
	`

	tag, err := r.Pool.Exec(ctx, query,
		financials.ProjectID,
		financials.Costs.AdjustedEstimatedCosts,
		financials.Margins.CurrentMargin,
		financials.Margins.CurrentMarginPercent,
		financials.Margins.ProjectedMargin,
		financials.Contingency.AvailableContingency,
	)
	if err != nil {
		return fmt.Errorf("error persisting derived financials for project %s: %w", financials.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *snapshotRepository) estimatesForProject(ctx context.Context, q querier, projectID string) ([]domain.Estimate, error) {
	estimates, err := scanQuery(ctx, q,
		`SELECT `+estimateColumns+` FROM estimates WHERE project_id = $1 ORDER BY estimate_id`,
		scanEstimates, "estimates", projectID)
	if err != nil {
		return nil, err
	}

	items, err := scanQuery(ctx, q, `
		SELECT `+lineItemColumns+`
		FROM estimate_line_items
		WHERE estimate_id IN (SELECT estimate_id FROM estimates WHERE project_id = $1)
		ORDER BY estimate_id, sort_order
	`, scanLineItems, "estimate line items", projectID)
	if err != nil {
		return nil, err
	}

	attachLineItems(estimates, items)
	return estimates, nil
}

func (r *snapshotRepository) allEstimates(ctx context.Context, q querier) ([]domain.Estimate, error) {
	estimates, err := scanQuery(ctx, q,
		`SELECT `+estimateColumns+` FROM estimates ORDER BY estimate_id`,
		scanEstimates, "estimates")
	if err != nil {
		return nil, err
	}

	items, err := scanQuery(ctx, q,
		`SELECT `+lineItemColumns+` FROM estimate_line_items ORDER BY estimate_id, sort_order`,
		scanLineItems, "estimate line items")
	if err != nil {
		return nil, err
	}

	attachLineItems(estimates, items)
	return estimates, nil
}

// expensesForProject returns the project's direct expenses plus every
// split-parent container touching it, with the containers' complete split
// sets. Splits are fetched for all returned containers, not only those with
// a child on this project, so a container booked to the project but
// allocated entirely elsewhere still carries its splits.
func (r *snapshotRepository) expensesForProject(ctx context.Context, q querier, projectID string) ([]domain.Expense, []domain.ExpenseSplit, error) {
	expenses, err := scanQuery(ctx, q, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE project_id = $1
			OR expense_id IN (
				SELECT parent_expense_id FROM expense_splits WHERE project_id = $1
			)
		ORDER BY expense_id
	`, scanExpenses, "expenses", projectID)
	if err != nil {
		return nil, nil, err
	}

	parentIDs := splitParentIDs(expenses)
	if len(parentIDs) == 0 {
		return expenses, nil, nil
	}

	splits, err := scanQuery(ctx, q,
		`SELECT `+splitColumns+` FROM expense_splits WHERE parent_expense_id = ANY($1) ORDER BY split_id`,
		scanSplits, "expense splits", parentIDs)
	if err != nil {
		return nil, nil, err
	}
	return expenses, splits, nil
}

func (r *snapshotRepository) quotesForProject(ctx context.Context, q querier, projectID string) ([]domain.Quote, error) {
	return scanQuery(ctx, q,
		`SELECT `+quoteColumns+` FROM quotes WHERE project_id = $1 ORDER BY quote_id`,
		scanQuotes, "quotes", projectID)
}

func (r *snapshotRepository) changeOrdersForProject(ctx context.Context, q querier, projectID string) ([]domain.ChangeOrder, error) {
	return scanQuery(ctx, q,
		`SELECT `+changeOrderColumns+` FROM change_orders WHERE project_id = $1 ORDER BY change_order_id`,
		scanChangeOrders, "change orders", projectID)
}

// scanQuery runs a query and hands the rows to a scan function, wrapping
// errors with the entity name.
func scanQuery[T any](ctx context.Context, q querier, sql string, scan func(pgx.Rows) ([]T, error), entity string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", entity, err)
	}
	out, err := scan(rows)
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", entity, err)
	}
	return out, nil
}

func scanProjects(rows pgx.Rows) ([]domain.Project, error) {
	defer rows.Close()
	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanEstimates(rows pgx.Rows) ([]domain.Estimate, error) {
	defer rows.Close()
	var estimates []domain.Estimate
	for rows.Next() {
		var e domain.Estimate
		if err := rows.Scan(
			&e.EstimateID, &e.ProjectID, &e.Status, &e.TotalAmount, &e.TotalCost,
			&e.ContingencyPercent, &e.VersionNumber, &e.ParentEstimateID,
			&e.IsAutoGenerated,
		); err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}
	return estimates, rows.Err()
}

func scanLineItems(rows pgx.Rows) ([]domain.LineItem, error) {
	defer rows.Close()
	var items []domain.LineItem
	for rows.Next() {
		var li domain.LineItem
		if err := rows.Scan(
			&li.LineItemID, &li.EstimateID, &li.Description, &li.Quantity,
			&li.CostPerUnit, &li.PricePerUnit, &li.SortOrder,
		); err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

func scanQuotes(rows pgx.Rows) ([]domain.Quote, error) {
	defer rows.Close()
	var quotes []domain.Quote
	for rows.Next() {
		var q domain.Quote
		if err := rows.Scan(
			&q.QuoteID, &q.ProjectID, &q.EstimateID, &q.VendorName,
			&q.Category, &q.Status, &q.QuoteAmount, &q.ClientAmount, &q.MarkupAmount,
		); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func scanExpenses(rows pgx.Rows) ([]domain.Expense, error) {
	defer rows.Close()
	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(
			&e.ExpenseID, &e.ProjectID, &e.Kind, &e.Category,
			&e.ApprovalStatus, &e.Amount, &e.Description,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func scanSplits(rows pgx.Rows) ([]domain.ExpenseSplit, error) {
	defer rows.Close()
	var splits []domain.ExpenseSplit
	for rows.Next() {
		var s domain.ExpenseSplit
		if err := rows.Scan(
			&s.SplitID, &s.ParentExpenseID, &s.ProjectID, &s.SplitAmount, &s.SplitPercentage,
		); err != nil {
			return nil, err
		}
		splits = append(splits, s)
	}
	return splits, rows.Err()
}

func scanChangeOrders(rows pgx.Rows) ([]domain.ChangeOrder, error) {
	defer rows.Close()
	var changeOrders []domain.ChangeOrder
	for rows.Next() {
		var co domain.ChangeOrder
		if err := rows.Scan(
			&co.ChangeOrderID, &co.ProjectID, &co.Description, &co.Status,
			&co.Amount, &co.ClientAmount, &co.CostImpact,
			&co.IncludesContingency, &co.ContingencyBilledToClient,
		); err != nil {
			return nil, err
		}
		changeOrders = append(changeOrders, co)
	}
	return changeOrders, rows.Err()
}

// attachLineItems distributes a batch of line items onto their estimates.
func attachLineItems(estimates []domain.Estimate, items []domain.LineItem) {
	if len(items) == 0 {
		return
	}
	byEstimate := make(map[string][]domain.LineItem, len(estimates))
	for _, li := range items {
		byEstimate[li.EstimateID] = append(byEstimate[li.EstimateID], li)
	}
	for i := range estimates {
		estimates[i].LineItems = byEstimate[estimates[i].EstimateID]
	}
}

// splitParentIDs collects the IDs of split-parent containers in a loaded
// expense set.
func splitParentIDs(expenses []domain.Expense) []string {
	var ids []string
	for _, e := range expenses {
		if e.Kind == domain.ExpenseSplitParent {
			ids = append(ids, e.ExpenseID)
		}
	}
	return ids
}

// projectExpenseSet filters a full expense/split load down to one project's
// snapshot rows: its own expenses, every split-parent container allocating
// to it, and the complete split sets of every included container.
func projectExpenseSet(projectID string, expenses []domain.Expense, splitsByParent map[string][]domain.ExpenseSplit) ([]domain.Expense, []domain.ExpenseSplit) {
	var out []domain.Expense
	var outSplits []domain.ExpenseSplit
	for _, e := range expenses {
		include := e.ProjectID == projectID
		if !include {
			for _, s := range splitsByParent[e.ExpenseID] {
				if s.ProjectID == projectID {
					include = true
					break
				}
			}
		}
		if !include {
			continue
		}
		out = append(out, e)
		if e.Kind == domain.ExpenseSplitParent {
			outSplits = append(outSplits, splitsByParent[e.ExpenseID]...)
		}
	}
	return out, outSplits
}

func bucketEstimates(estimates []domain.Estimate) map[string][]domain.Estimate {
	m := make(map[string][]domain.Estimate)
	for _, e := range estimates {
		m[e.ProjectID] = append(m[e.ProjectID], e)
	}
	return m
}

func bucketQuotes(quotes []domain.Quote) map[string][]domain.Quote {
	m := make(map[string][]domain.Quote)
	for _, q := range quotes {
		m[q.ProjectID] = append(m[q.ProjectID], q)
	}
	return m
}

func bucketChangeOrders(changeOrders []domain.ChangeOrder) map[string][]domain.ChangeOrder {
	m := make(map[string][]domain.ChangeOrder)
	for _, co := range changeOrders {
		m[co.ProjectID] = append(m[co.ProjectID], co)
	}
	return m
}

func bucketSplits(splits []domain.ExpenseSplit) map[string][]domain.ExpenseSplit {
	m := make(map[string][]domain.ExpenseSplit)
	for _, s := range splits {
		m[s.ParentExpenseID] = append(m[s.ParentExpenseID], s)
	}
	return m
}
