package pos

import (
	"regexp"
	"strings"
)

const MaxNameLength = 120

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if len(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Kind string

const (
	KindCafe           Kind = "cafe"
	KindBakery         Kind = "bakery"
	KindVendingMachine Kind = "vending_machine"
	KindLibrary        Kind = "library"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindCafe, KindBakery, KindVendingMachine, KindLibrary:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

var postalCodeRegex = regexp.MustCompile(`^[0-9]{5}$`)

type Address struct {
	street      string
	houseNumber string
	postalCode  string
}

func NewAddress(street, houseNumber, postalCode string) (Address, error) {
	street = strings.TrimSpace(street)
	houseNumber = strings.TrimSpace(houseNumber)
	if street == "" || houseNumber == "" {
		return Address{}, ErrInvalidAddress
	}
	if !postalCodeRegex.MatchString(postalCode) {
		return Address{}, ErrInvalidPostalCode
	}
	return Address{street: street, houseNumber: houseNumber, postalCode: postalCode}, nil
}

func (a Address) Street() string      { return a.street }
func (a Address) HouseNumber() string { return a.houseNumber }
func (a Address) PostalCode() string  { return a.postalCode }
