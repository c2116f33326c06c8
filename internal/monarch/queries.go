package monarch

const accountsQuery = `
query GetAccounts {
	accounts {
		id
		displayName
		currentBalance
		includeInNetWorth
		type {
			name
		}
	}
}`

const categoriesQuery = `
query GetCategories {
	categories {
		id
		name
		systemCategory
		group {
			name
			type
		}
	}
}`

const transactionsQuery = `
query GetTransactions($startDate: Date!, $endDate: Date!, $limit: Int!, $offset: Int!) {
	allTransactions(filters: {startDate: $startDate, endDate: $endDate}, limit: $limit, offset: $offset) {
		totalCount
		results {
			id
			amount
			date
			notes
			account {
				id
			}
			category {
				id
			}
			merchant {
				name
			}
		}
	}
}`

const snapshotsQuery = `
query GetAggregateSnapshots($startDate: Date!, $endDate: Date!, $accountType: String) {
	aggregateSnapshots(filters: {startDate: $startDate, endDate: $endDate, accountType: $accountType}) {
		date
		balance
	}
}`

const budgetQuery = `
query GetBudgetData($startMonth: Date!, $endMonth: Date!) {
	budgetData(startMonth: $startMonth, endMonth: $endMonth) {
		monthlyAmountsByCategory {
			category {
				id
				name
				group {
					name
					type
				}
			}
			monthlyAmounts {
				plannedCashFlowAmount
			}
		}
		totalsByMonth {
			totalIncome {
				plannedAmount
			}
			totalExpenses {
				plannedAmount
			}
		}
	}
}`
