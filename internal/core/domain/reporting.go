package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyPoint is one bucket of the income-vs-expense chart series.
type MonthlyPoint struct {
	Month   string          `json:"month"` // short month name, e.g. "Jun"
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Summary holds the headline totals for a transaction list.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	Count         int             `json:"count"`
}

// MonthComparison holds current-month totals alongside the percentage change
// versus the immediately preceding calendar month.
type MonthComparison struct {
	ThisMonthIncome   decimal.Decimal `json:"thisMonthIncome"`
	ThisMonthExpenses decimal.Decimal `json:"thisMonthExpenses"`
	LastMonthIncome   decimal.Decimal `json:"lastMonthIncome"`
	LastMonthExpenses decimal.Decimal `json:"lastMonthExpenses"`
	IncomeChange      decimal.Decimal `json:"incomeChange"`   // percent
	ExpensesChange    decimal.Decimal `json:"expensesChange"` // percent
}

// BudgetStatus compares one budget against actual spending in its category.
type BudgetStatus struct {
	Category  Category        `json:"category"`
	Budget    decimal.Decimal `json:"budget"`
	Actual    decimal.Decimal `json:"actual"`
	Remaining decimal.Decimal `json:"remaining"` // clamped to zero for display
	Overspent decimal.Decimal `json:"overspent"` // signed Actual - Budget, needed to detect overspend
	// Percentage is Actual/Budget*100, zero when the budget amount is zero.
	Percentage decimal.Decimal `json:"percentage"`
	OverBudget bool            `json:"overBudget"`
}

// BudgetOverview aggregates all budget statuses with whole-portfolio totals.
// TotalUtilization is nil when no budget is set, since the ratio is undefined.
type BudgetOverview struct {
	Statuses         []BudgetStatus   `json:"statuses"`
	TotalBudget      decimal.Decimal  `json:"totalBudget"`
	TotalSpending    decimal.Decimal  `json:"totalSpending"`
	TotalUtilization *decimal.Decimal `json:"totalUtilization,omitempty"` // percent
}

// DashboardSummary bundles the headline totals with the month-over-month
// comparison for the dashboard's top cards. Source records whether the
// underlying snapshot was fresh or served from memory.
type DashboardSummary struct {
	Summary        Summary         `json:"summary"`
	MonthOverMonth MonthComparison `json:"monthOverMonth"`
	Source         Source          `json:"source"`
}

// UpcomingBill is a reminder entry shown on the dashboard.
type UpcomingBill struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"dueDate"`
}

// Insights holds the derived dashboard highlights.
type Insights struct {
	TopCategory   Category        `json:"topCategory"` // empty when there are no expenses
	TopAmount     decimal.Decimal `json:"topAmount"`
	OverBudget    []BudgetStatus  `json:"overBudget"`
	UpcomingBills []UpcomingBill  `json:"upcomingBills"`
}
