package dlang

// DefaultKey is the language used when none is asked for.
const DefaultKey = "en"

// English returns the built-in English pack.
func English() Pack {
	return Pack{
		Key: DefaultKey,
		Months: [12]string{
			"January", "February", "March", "April", "May", "June", "July",
			"August", "September", "October", "November", "December",
		},
		MonthsShort: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep",
			"Oct", "Nov", "Dec",
		},
		Weekdays: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday",
			"Friday", "Saturday",
		},
		WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Relative: Relative{
			Minute: "minute",
			Hour:   "hour",
			Day:    "day",
			Month:  "month",
			Year:   "year",
			Less:   "less than a minute",
			Direction: Direction{
				Future: "in",
				Past:   "ago",
			},
		},
	}
}
