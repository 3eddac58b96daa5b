package domain

// Значения по умолчанию для форм
const (
	DefaultNumPeople    = 1
	DefaultNumRooms     = 1
	DefaultNumDays      = 1
	DefaultDurationDays = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultStates штаты, доступные в фильтре и формах, если в конфиге не указано иное
var DefaultStates = []string{
	"Karnataka",
	"Tamil Nadu",
	"Andhra Pradesh",
	"Maharashtra",
}
