package pricing

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrIndexOutOfRange = errors.New("line index out of range")
	ErrUnknownField    = errors.New("unknown line field")
)

// Line is the behaviour a category's fields struct provides to a Collection.
// Set stores a raw value and reports whether field belongs to the category;
// Total derives the line total from the stored fields alone.
type Line[T any, F comparable] interface {
	*T
	Set(field F, value string) bool
	Total() float64
}

// Item is one row in a Collection. Its line total is cached and only
// refreshed by the owning collection.
type Item[T any] struct {
	Fields    T
	lineTotal float64
}

// LineTotal returns the total derived from Fields at the last edit.
func (i Item[T]) LineTotal() float64 {
	return i.lineTotal
}

// Collection is the ordered line items of one cost category plus its
// miscellaneous amount. The zero value is an empty collection.
type Collection[T any, F comparable, PT Line[T, F]] struct {
	items []Item[T]
	misc  string
}

type (
	Materials = Collection[MaterialLine, MaterialField, *MaterialLine]
	Packaging = Collection[PackagingLine, PackagingField, *PackagingLine]
	Labor     = Collection[LaborLine, LaborField, *LaborLine]
)

// Add appends an item with every field empty.
func (c *Collection[T, F, PT]) Add() {
	c.items = append(c.items, Item[T]{})
}

// Update stores value verbatim into field of the item at index and
// recomputes that item's line total.
func (c *Collection[T, F, PT]) Update(index int, field F, value string) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	item := &c.items[index]
	fields := PT(&item.Fields)
	if !fields.Set(field, value) {
		return fmt.Errorf("%w: %v", ErrUnknownField, field)
	}
	item.lineTotal = fields.Total()
	return nil
}

// Remove deletes the item at index, keeping the order of the others.
func (c *Collection[T, F, PT]) Remove(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.items = slices.Delete(c.items, index, index+1)
	return nil
}

func (c *Collection[T, F, PT]) SetMiscellaneous(value string) {
	c.misc = value
}

func (c *Collection[T, F, PT]) Miscellaneous() string {
	return c.misc
}

func (c *Collection[T, F, PT]) Len() int {
	return len(c.items)
}

// At returns a copy of the item at index.
func (c *Collection[T, F, PT]) At(index int) (Item[T], bool) {
	if index < 0 || index >= len(c.items) {
		return Item[T]{}, false
	}
	return c.items[index], true
}

// Items returns a copy of the items in order.
func (c *Collection[T, F, PT]) Items() []Item[T] {
	return slices.Clone(c.items)
}

// Subtotal is the sum of line totals plus the parsed miscellaneous amount.
func (c *Collection[T, F, PT]) Subtotal() float64 {
	var sum float64
	for _, item := range c.items {
		sum += item.lineTotal
	}
	return sum + ParseAmount(c.misc, 0)
}

func (c *Collection[T, F, PT]) checkIndex(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	return nil
}

// OtherCost is the single fixed "other costs" entry.
type OtherCost struct {
	Description string `json:"description"`
	Total       string `json:"total"`
}

// OtherCosts holds exactly one OtherCost; it cannot grow or shrink.
type OtherCosts struct {
	item OtherCost
}

func (o *OtherCosts) Set(item OtherCost) {
	o.item = item
}

func (o *OtherCosts) Item() OtherCost {
	return o.item
}

func (o *OtherCosts) Subtotal() float64 {
	return ParseAmount(o.item.Total, 0)
}
