package seed

import "time"

type customer struct {
	Name     string
	Email    string
	ImageURL string
}

type invoice struct {
	// Customer indexes customers.
	Customer int
	Amount   int64
	Status   string
	Date     time.Time
}

const (
	userName     = "User"
	userEmail    = "user@nextmail.com"
	userPassword = "123456"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var customers = []customer{
	{Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

var invoices = []invoice{
	{Customer: 0, Amount: 15795, Status: "pending", Date: day(2025, time.December, 6)},
	{Customer: 1, Amount: 20348, Status: "pending", Date: day(2025, time.November, 14)},
	{Customer: 4, Amount: 3040, Status: "paid", Date: day(2025, time.October, 29)},
	{Customer: 3, Amount: 44800, Status: "paid", Date: day(2025, time.September, 10)},
	{Customer: 5, Amount: 34577, Status: "pending", Date: day(2025, time.August, 5)},
	{Customer: 2, Amount: 54246, Status: "pending", Date: day(2025, time.July, 16)},
	{Customer: 0, Amount: 666, Status: "pending", Date: day(2025, time.June, 27)},
	{Customer: 3, Amount: 32545, Status: "paid", Date: day(2025, time.June, 9)},
	{Customer: 4, Amount: 1250, Status: "paid", Date: day(2025, time.June, 17)},
	{Customer: 5, Amount: 8546, Status: "paid", Date: day(2025, time.June, 7)},
	{Customer: 1, Amount: 500, Status: "paid", Date: day(2025, time.August, 19)},
	{Customer: 5, Amount: 8945, Status: "paid", Date: day(2025, time.June, 3)},
	{Customer: 2, Amount: 1000, Status: "paid", Date: day(2025, time.June, 5)},
}
