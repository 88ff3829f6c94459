package catalog

import (
	"errors"
	"testing"
)

func TestAllReturnsCopy(t *testing.T) {
	c := New()

	first := c.All()
	first[0].Name = "Mutated"

	// Изменение полученного среза не затрагивает каталог
	if c.All()[0].Name == "Mutated" {
		t.Error("All должен возвращать копию каталога")
	}
}

func TestByID(t *testing.T) {
	c := New()

	p, err := c.ByID("3")
	if err != nil {
		t.Fatalf("ByID вернул ошибку: %v", err)
	}
	if p.Name != "Gateway of India" {
		t.Errorf("ожидалось Gateway of India, получено %s", p.Name)
	}

	if _, err := c.ByID("999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("незнакомый id должен давать ErrNotFound, получено %v", err)
	}
}

func TestTagsDeduplicatedInOrder(t *testing.T) {
	c := New()

	tags := c.Tags()

	seen := map[string]bool{}
	for _, tag := range tags {
		if seen[tag] {
			t.Errorf("тег %s встречается дважды", tag)
		}
		seen[tag] = true
	}
	// Первый тег первого места открывает список
	if tags[0] != "adventure" {
		t.Errorf("теги должны идти в каталожном порядке, получено %v", tags)
	}
}

func TestReviewsForPlaceWithoutAny(t *testing.T) {
	c := New()

	r := c.Reviews("7")
	if len(r.Blogs) != 0 || len(r.Tips) != 0 {
		t.Errorf("у места 7 отзывов нет, получено %+v", r)
	}
}
