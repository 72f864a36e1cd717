package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

func TestNearestPriorDate(t *testing.T) {
	tests := []struct {
		name      string
		dates     []string
		target    string
		want      string
		wantFound bool
	}{
		{
			name:      "picks nearest of several priors",
			dates:     []string{"2024-01-05", "2024-01-08", "2024-01-10"},
			target:    "2024-01-09",
			want:      "2024-01-08",
			wantFound: true,
		},
		{
			name:      "ignores target itself and later dates",
			dates:     []string{"2024-01-09", "2024-01-10"},
			target:    "2024-01-09",
			want:      "",
			wantFound: false,
		},
		{
			name:      "no records at all",
			dates:     nil,
			target:    "2024-01-09",
			want:      "",
			wantFound: false,
		},
		{
			name:      "gap across month boundary",
			dates:     []string{"2023-12-31", "2024-01-15"},
			target:    "2024-01-10",
			want:      "2023-12-31",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := domain.NearestPriorDate(tt.dates, tt.target)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconciliationSession_CarryForward(t *testing.T) {
	session := &domain.ReconciliationSession{
		TargetDate: "2024-01-11",
		PriorDate:  "2024-01-10",
		Obligations: []domain.ReconciliationObligation{
			{StaffID: "s1", StaffName: "João", Amount: dec("40")},
			{StaffID: "s2", StaffName: "Maria", Amount: dec("60")},
		},
		State: domain.ReconciliationPrompting,
	}

	session.Acknowledge("s1", true)
	session.Acknowledge("ghost", true) // unknown id is ignored

	items := session.CarryForward()

	assert.Len(t, items, 1)
	assert.Equal(t, "Maria (Ref. 10/01/2024)", items[0].Name)
	assert.Equal(t, "2024-01-10", items[0].ReferenceDate)
	assert.True(t, dec("60").Equal(items[0].Amount))
	assert.Empty(t, items[0].ID)
}

func TestReconciliationSession_CarryForwardAllAcknowledged(t *testing.T) {
	session := &domain.ReconciliationSession{
		PriorDate: "2024-01-10",
		Obligations: []domain.ReconciliationObligation{
			{StaffID: "s1", StaffName: "João", Amount: dec("40")},
		},
	}
	session.Acknowledge("s1", true)

	assert.Empty(t, session.CarryForward())
}

func TestMergePendencies_SkipsDuplicates(t *testing.T) {
	current := []domain.PendingItem{
		{ID: "p1", Name: "Maria (Ref. 10/01/2024)", Amount: dec("60"), ReferenceDate: "2024-01-10"},
		{ID: "p2", Name: "Fornecedor", Amount: dec("80")},
	}
	additions := []domain.PendingItem{
		{Name: "Maria (Ref. 10/01/2024)", Amount: dec("60"), ReferenceDate: "2024-01-10"}, // duplicate
		{Name: "João (Ref. 10/01/2024)", Amount: dec("40"), ReferenceDate: "2024-01-10"},
	}

	merged, applied := domain.MergePendencies(current, additions)

	assert.Len(t, merged, 3)
	assert.Len(t, applied, 1)
	assert.Equal(t, "João (Ref. 10/01/2024)", applied[0].Name)
	// Inputs stay untouched.
	assert.Len(t, current, 2)
}

func TestMergePendencies_SameNameDifferentAmountIsKept(t *testing.T) {
	current := []domain.PendingItem{
		{Name: "Maria (Ref. 10/01/2024)", Amount: dec("60"), ReferenceDate: "2024-01-10"},
	}
	additions := []domain.PendingItem{
		{Name: "Maria (Ref. 10/01/2024)", Amount: dec("65"), ReferenceDate: "2024-01-10"},
	}

	merged, applied := domain.MergePendencies(current, additions)

	assert.Len(t, merged, 2)
	assert.Len(t, applied, 1)
}
