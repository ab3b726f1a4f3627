package models

// Categories. The set is closed: every transaction carries exactly one of these.
const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryRent          Category = "Rent"
	CategorySubscriptions Category = "Subscriptions"
	CategoryUtilities     Category = "Utilities"
	CategoryShopping      Category = "Shopping"
	CategoryIncome        Category = "Income"
	CategoryOther         Category = "Other"
)

// Required CSV columns, lower case.
const (
	ColumnDate        = "date"
	ColumnDescription = "description"
	ColumnAmount      = "amount"
)

// RequiredColumns lists the header fields every input file must carry.
var RequiredColumns = []string{ColumnDate, ColumnDescription, ColumnAmount}

// File permissions
const (
	PermissionFile      = 0644
	PermissionDirectory = 0750
)
