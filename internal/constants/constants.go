package constants

const (
	AppName           = "lifetrack"
	DefaultDataDir    = "~/.config/lifetrack"
	DefaultConfigPath = "~/.config/lifetrack/lifetrack.db"
	DefaultConfigFile = "~/.config/lifetrack/config.json"
	Version           = "v0.1.0"

	// KeyPrefix namespaces every stored key so unrelated data sharing the
	// same medium never collides with ours.
	KeyPrefix = "life-tracker-"

	// Collection keys (without prefix)
	KeyTodos            = "todos"
	KeyHabits           = "habits"
	KeyHabitConfig      = "habit-config"
	KeyExpenses         = "expenses"
	KeyCustomCategories = "custom-categories"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MemoryDSN selects the in-memory medium instead of a file
	MemoryDSN = ":memory:"

	// Expense constants
	DefaultExpenseDesc     = "Expense"
	CustomCategoryColor    = "#DEF254"
	CustomCategoryIDPrefix = "custom-"
	HabitIDPrefix          = "habit-"

	// Habit windows, in calendar days
	HabitWeekDays  = 7
	HabitMonthDays = 30

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifetrack-"
	BackupFileSuffix = ".db"
)
