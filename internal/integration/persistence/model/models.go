package model

// All returns every model managed by auto-migration, parents first.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&RefreshTokenModel{},
		&RecurringRuleModel{},
		&TransactionModel{},
		&PredictionExclusionModel{},
		&CategoryModel{},
		&HiddenCategoryModel{},
		&CategoryBudgetModel{},
		&FinancialGoalModel{},
		&EmailQueueModel{},
	}
}
