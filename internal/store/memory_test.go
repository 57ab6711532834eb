package store

import (
	"context"
	"errors"
	"testing"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

func sampleWorkbook(weekKey string) *workbook.Workbook {
	sections := []workbook.Section{
		{ID: workbook.SectionIntro, Position: 1, Items: []workbook.Item{
			{ID: "cantico_107_e_oracao_1", Position: 1, IsAssignable: true},
			{ID: "comentarios_iniciais_2", Position: 2, IsAssignable: true, ChairmanAssigned: true},
		}},
		{ID: workbook.SectionTreasures, Position: 2, Items: []workbook.Item{
			{ID: "leitura_da_biblia_1", Position: 1, IsAssignable: true},
		}},
		{ID: workbook.SectionMinistry, Position: 3},
		{ID: workbook.SectionLiving, Position: 4},
	}
	return workbook.New(weekKey, sections)
}

func TestMemoryFindMiss(t *testing.T) {
	m := NewMemory()

	_, err := m.Find(context.Background(), "04/05-10/05")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryCreateThenFind(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	stored := sampleWorkbook("04/05-10/05")

	if err := m.Create(ctx, stored); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := m.Find(ctx, "04/05-10/05")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(found.Sections) != len(stored.Sections) {
		t.Fatalf("section count = %d, expected %d", len(found.Sections), len(stored.Sections))
	}
	for i, section := range found.Sections {
		if section.ID != stored.Sections[i].ID {
			t.Errorf("section %d id = %s, expected %s", i, section.ID, stored.Sections[i].ID)
		}
		if len(section.Items) != len(stored.Sections[i].Items) {
			t.Errorf("section %s item count = %d, expected %d",
				section.ID, len(section.Items), len(stored.Sections[i].Items))
		}
	}
}

func TestMemoryCreateDuplicate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Create(ctx, sampleWorkbook("04/05-10/05")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := m.Create(ctx, sampleWorkbook("04/05-10/05"))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestMemoryPurgeOthers(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, key := range []string{"27/04-03/05", "04/05-10/05", "11/05-17/05"} {
		if err := m.Create(ctx, sampleWorkbook(key)); err != nil {
			t.Fatalf("Create(%s) failed: %v", key, err)
		}
	}

	if err := m.PurgeOthers(ctx, "04/05-10/05"); err != nil {
		t.Fatalf("PurgeOthers failed: %v", err)
	}

	if m.Len() != 1 {
		t.Errorf("stored count = %d, expected only the kept week", m.Len())
	}
	if _, err := m.Find(ctx, "04/05-10/05"); err != nil {
		t.Errorf("kept week missing: %v", err)
	}
	if _, err := m.Find(ctx, "27/04-03/05"); !errors.Is(err, ErrNotFound) {
		t.Errorf("purged week still present, err = %v", err)
	}
}

func TestMemoryDeleteAbsentKey(t *testing.T) {
	m := NewMemory()

	if err := m.Delete(context.Background(), "04/05-10/05"); err != nil {
		t.Fatalf("deleting an absent key must not fail, got %v", err)
	}
}
