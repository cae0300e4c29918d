package ui

type tableController interface {
	NextColumn()
	PrevColumn()
	JumpToColumn(number int) bool
	SortActiveColumn(desc bool)
	ClearColumnSort() bool
	HideActiveColumn() bool
	ShowAllColumns()
	TableMeta() string
}
