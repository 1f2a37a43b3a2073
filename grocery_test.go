package client

import (
	"strings"
	"testing"
)

func TestGroceryByCategory(t *testing.T) {
	t.Parallel()
	items := []GroceryItem{
		{Name: "Chicken breast", Quantity: "500g", Category: "Meat"},
		{Name: "Spinach", Quantity: "1 bunch", Category: "Produce"},
		{Name: "Tomatoes", Quantity: "4", Category: "Produce"},
	}
	grouped := GroceryByCategory(items)
	if len(grouped) != 2 {
		t.Fatalf("want 2 categories, got %d", len(grouped))
	}
	produce := grouped["Produce"]
	if len(produce) != 2 || produce[0].Name != "Spinach" || produce[1].Name != "Tomatoes" {
		t.Fatalf("per-category order not preserved: %+v", produce)
	}
}

func TestWriteGroceryList(t *testing.T) {
	t.Parallel()
	items := []GroceryItem{
		{Name: "Spinach", Quantity: "1 bunch", Category: "Produce"},
		{Name: "Chicken breast", Quantity: "500g", Category: "Meat"},
	}
	var b strings.Builder
	if err := WriteGroceryList(&b, items); err != nil {
		t.Fatalf("WriteGroceryList: %v", err)
	}
	want := "Grocery List\n\nMeat:\n  - Chicken breast (500g)\n\nProduce:\n  - Spinach (1 bunch)\n"
	if b.String() != want {
		t.Fatalf("rendered list:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestWriteGroceryList_Empty(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	if err := WriteGroceryList(&b, nil); err != nil {
		t.Fatalf("WriteGroceryList: %v", err)
	}
	if b.String() != "Grocery List\n" {
		t.Fatalf("empty list render: %q", b.String())
	}
}
