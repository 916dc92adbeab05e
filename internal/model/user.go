// Package model holds the demo domain fed into pipelines: users with
// optional addresses and employees with salaries. Fields that may be absent
// are only reachable through optional.Optional accessors.
package model

import (
	"github.com/kabu1204/go-stream/optional"
)

type Country struct {
	name string
}

func NewCountry(name string) *Country {
	return &Country{name: name}
}

func (c *Country) Name() string { return c.name }

type Address struct {
	country *Country
}

func NewAddress(country *Country) *Address {
	return &Address{country: country}
}

func (a *Address) Country() optional.Optional[*Country] {
	return optional.OfNullable(a.country)
}

func (a *Address) SetCountry(country *Country) { a.country = country }

type User struct {
	name    string
	address *Address
	email   string
}

type UserOption func(*User)

func WithAddress(a *Address) UserOption { return func(u *User) { u.address = a } }
func WithEmail(email string) UserOption { return func(u *User) { u.email = email } }

func NewUser(name string, opts ...UserOption) *User {
	u := &User{name: name}
	for _, o := range opts {
		o(u)
	}
	return u
}

func (u *User) Name() string { return u.name }

// NameOptional is empty for a user without a name.
func (u *User) NameOptional() optional.Optional[string] {
	return optional.FromOk(u.name, u.name != "")
}

func (u *User) Address() optional.Optional[*Address] {
	return optional.OfNullable(u.address)
}

func (u *User) Email() optional.Optional[string] {
	return optional.FromOk(u.email, u.email != "")
}

func (u *User) SetAddress(a *Address) { u.address = a }
func (u *User) SetEmail(email string) { u.email = email }
