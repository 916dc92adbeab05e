package model

type Employee struct {
	id     int
	name   string
	salary float64
}

func NewEmployee(id int, name string, salary float64) *Employee {
	return &Employee{id: id, name: name, salary: salary}
}

func (e *Employee) ID() int         { return e.id }
func (e *Employee) Name() string    { return e.name }
func (e *Employee) Salary() float64 { return e.salary }

// SalaryIncrement raises the salary by percent.
func (e *Employee) SalaryIncrement(percent float64) {
	e.salary += e.salary * percent / 100
}

// Employees returns a fresh copy of the sample staff.
func Employees() []*Employee {
	return []*Employee{
		NewEmployee(1, "Bulbek", 10000),
		NewEmployee(2, "Adam", 20000),
		NewEmployee(3, "Ewa", 30000),
	}
}
