package entity

import "strconv"

// MenuItem is a single dish on the static menu.
type MenuItem struct {
	Name  string
	Price int // whole roubles
}

// DisplayPrice formats the price the way the menu prints it, e.g. "200 ₽".
func (m MenuItem) DisplayPrice() string {
	return strconv.Itoa(m.Price) + " ₽"
}
