package models

// Category maps a row of the categories table
type Category struct {
	ID   int64  `db:"ID"`
	Type string `db:"CATEGORY_TYPE"`
}

// Question maps a row of the questions table
type Question struct {
	ID         int64  `db:"ID"`
	Question   string `db:"QUESTION"`
	Answer     string `db:"ANSWER"`
	Difficulty int    `db:"DIFFICULTY"`
	CategoryID int64  `db:"CATEGORY_ID"`
}
