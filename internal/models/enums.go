package models

// ClassLevels enumerates the class levels a student can apply for.
var ClassLevels = []string{"Nursery", "LKG", "UKG", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

// Sessions enumerates the academic sessions accepted on admission records.
var Sessions = []string{"2020", "2021", "2022", "2023", "2024", "2025", "2026", "2027", "2028", "2029", "2030"}

// Genders enumerates the accepted gender values.
var Genders = []string{"Male", "Female", "Other"}

// PaymentModes enumerates the accepted fee payment modes.
var PaymentModes = []string{"Cash", "Online", "Bank Transfer", "Cheque"}

// ExpenseCategories enumerates the accepted expense categories.
var ExpenseCategories = []string{"Salaries", "Utilities", "Supplies", "Maintenance", "Other"}

// ValidEnum reports whether value is a member of the closed set.
func ValidEnum(value string, set []string) bool {
	for _, item := range set {
		if item == value {
			return true
		}
	}
	return false
}
