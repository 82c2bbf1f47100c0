package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketwise/api/internal/domain"
)

type fakeTicketRepo struct {
	tickets map[string]domain.Ticket

	createCalls int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[string]domain.Ticket{}}
}

func (f *fakeTicketRepo) CreateBatch(_ context.Context, tickets []domain.Ticket) ([]domain.Ticket, error) {
	f.createCalls++
	for _, t := range tickets {
		f.tickets[t.Code] = t
	}

	return tickets, nil
}

func (f *fakeTicketRepo) FindByFamilyID(_ context.Context, familyID uint) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, t := range f.tickets {
		if t.FamilyID == familyID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	return out, nil
}

func (f *fakeTicketRepo) CountByFamilyID(_ context.Context, familyID uint) (int64, error) {
	var count int64
	for _, t := range f.tickets {
		if t.FamilyID == familyID {
			count++
		}
	}

	return count, nil
}

func (f *fakeTicketRepo) UpdateUsed(_ context.Context, familyID uint, codes []string, used bool) (int64, error) {
	var updated int64
	for _, code := range codes {
		t, ok := f.tickets[code]
		if !ok || t.FamilyID != familyID {
			continue
		}
		t.IsUsed = used
		if used {
			now := time.Now()
			t.ValidatedAt = &now
		} else {
			t.ValidatedAt = nil
		}
		f.tickets[code] = t
		updated++
	}

	return updated, nil
}

func uintPtr(v uint) *uint { return &v }

func TestMaterializeTickets(t *testing.T) {
	family := domain.Family{ID: 7}
	sheets := []domain.Sheet{
		{ID: 2, Level: domain.LevelPrimary, Year: 25, StartNumber: 25, EndNumber: 48, FamilyID: uintPtr(7)},
		{ID: 1, Level: domain.LevelPrimary, Year: 25, StartNumber: 1, EndNumber: 24, FamilyID: uintPtr(7)},
	}

	tickets := MaterializeTickets(family, sheets)

	require.Len(t, tickets, 48)
	assert.Equal(t, "P-250001", tickets[0].Code)
	assert.Equal(t, "P-250048", tickets[47].Code)

	// Sorted by code even though the sheets arrived out of order.
	assert.True(t, sort.SliceIsSorted(tickets, func(i, j int) bool {
		return tickets[i].Code < tickets[j].Code
	}))

	for i, ticket := range tickets {
		assert.Equal(t, uint(7), ticket.FamilyID)
		assert.False(t, ticket.IsUsed)
		assert.Nil(t, ticket.ValidatedAt)
		if i < 24 {
			assert.Equal(t, uint(1), ticket.SheetID)
		} else {
			assert.Equal(t, uint(2), ticket.SheetID)
		}
	}
}

func TestMaterializeTickets_SkipsForeignSheets(t *testing.T) {
	family := domain.Family{ID: 7}
	sheets := []domain.Sheet{
		{ID: 1, Level: domain.LevelPrimary, Year: 25, StartNumber: 1, EndNumber: 12, FamilyID: uintPtr(7)},
		{ID: 2, Level: domain.LevelPrimary, Year: 25, StartNumber: 13, EndNumber: 24, FamilyID: uintPtr(9)},
		{ID: 3, Level: domain.LevelPrimary, Year: 25, StartNumber: 25, EndNumber: 36},
	}

	tickets := MaterializeTickets(family, sheets)

	require.Len(t, tickets, 12)
	for _, ticket := range tickets {
		assert.Equal(t, uint(1), ticket.SheetID)
	}
}

func TestMaterializeTickets_YearFromSheetNotClock(t *testing.T) {
	// A sheet generated in a previous year keeps that year's codes no
	// matter when its tickets are materialized.
	family := domain.Family{ID: 1}
	sheets := []domain.Sheet{
		{ID: 1, Level: domain.LevelKindergarten, Year: 24, StartNumber: 100, EndNumber: 111, FamilyID: uintPtr(1),
			GenerationDate: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)},
	}

	tickets := MaterializeTickets(family, sheets)

	require.Len(t, tickets, 12)
	assert.Equal(t, "K-240100", tickets[0].Code)
	assert.Equal(t, "K-240111", tickets[11].Code)
}

func TestMaterializeTickets_NoSheets(t *testing.T) {
	tickets := MaterializeTickets(domain.Family{ID: 1}, nil)

	assert.Empty(t, tickets)
}

func TestTicketService_ListByFamily_MaterializesOnce(t *testing.T) {
	ticketRepo := newFakeTicketRepo()
	sheetRepo := &fakeSheetRepo{sheets: []domain.Sheet{
		{ID: 1, Level: domain.LevelPrimary, Year: 25, StartNumber: 1, EndNumber: 24,
			IsAssigned: true, FamilyID: uintPtr(1)},
	}}
	familyRepo := &fakeFamilyRepo{families: map[uint]domain.Family{1: {ID: 1}}}
	svc := NewTicketService(ticketRepo, sheetRepo, familyRepo)

	tickets, err := svc.ListByFamily(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, tickets, 24)
	assert.Equal(t, "P-250001", tickets[0].Code)
	assert.Equal(t, "P-250024", tickets[23].Code)
	assert.Equal(t, 1, ticketRepo.createCalls)

	// Second read returns the same set without re-materializing.
	again, err := svc.ListByFamily(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, tickets, again)
	assert.Equal(t, 1, ticketRepo.createCalls, "materialization must run once per family")
}

func TestTicketService_ListByFamily_FamilyWithoutSheets(t *testing.T) {
	svc := NewTicketService(newFakeTicketRepo(), &fakeSheetRepo{}, &fakeFamilyRepo{families: map[uint]domain.Family{1: {ID: 1}}})

	tickets, err := svc.ListByFamily(context.Background(), 1)
	require.NoError(t, err)

	assert.Empty(t, tickets)
}

func TestTicketService_ListByFamily_UnknownFamily(t *testing.T) {
	svc := NewTicketService(newFakeTicketRepo(), &fakeSheetRepo{}, &fakeFamilyRepo{})

	_, err := svc.ListByFamily(context.Background(), 42)

	require.ErrorIs(t, err, ErrFamilyNotFound)
}

func TestTicketService_Validate(t *testing.T) {
	ticketRepo := newFakeTicketRepo()
	sheetRepo := &fakeSheetRepo{sheets: []domain.Sheet{
		{ID: 1, Level: domain.LevelPrimary, Year: 25, StartNumber: 1, EndNumber: 12,
			IsAssigned: true, FamilyID: uintPtr(1)},
	}}
	familyRepo := &fakeFamilyRepo{families: map[uint]domain.Family{1: {ID: 1}, 2: {ID: 2}}}
	svc := NewTicketService(ticketRepo, sheetRepo, familyRepo)

	_, err := svc.ListByFamily(context.Background(), 1)
	require.NoError(t, err)

	// Unknown codes are skipped, never created.
	updated, err := svc.Validate(context.Background(), 1, []string{"P-250001", "P-250002", "P-259999"}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	tickets, err := svc.ListByFamily(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tickets, 12)
	assert.True(t, tickets[0].IsUsed)
	assert.NotNil(t, tickets[0].ValidatedAt)
	assert.True(t, tickets[1].IsUsed)
	assert.False(t, tickets[2].IsUsed)

	// Another family cannot touch these codes.
	updated, err = svc.Validate(context.Background(), 2, []string{"P-250001"}, false)
	require.NoError(t, err)
	assert.Zero(t, updated)

	// Un-validating clears the flag and timestamp.
	updated, err = svc.Validate(context.Background(), 1, []string{"P-250001"}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	tickets, err = svc.ListByFamily(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, tickets[0].IsUsed)
	assert.Nil(t, tickets[0].ValidatedAt)
}

func TestTicketService_Validate_UnknownFamily(t *testing.T) {
	svc := NewTicketService(newFakeTicketRepo(), &fakeSheetRepo{}, &fakeFamilyRepo{})

	_, err := svc.Validate(context.Background(), 42, []string{"P-250001"}, true)

	require.ErrorIs(t, err, ErrFamilyNotFound)
}

func TestGenerateAssignMaterialize_EndToEnd(t *testing.T) {
	sheetRepo := &fakeSheetRepo{}
	ticketRepo := newFakeTicketRepo()
	familyRepo := &fakeFamilyRepo{families: map[uint]domain.Family{1: {ID: 1}}}

	sheetSvc := NewSheetService(sheetRepo, &fakeSheetTicketRepo{}, &fakeAssetRepo{}, familyRepo)
	sheetSvc.now = func() time.Time { return time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC) }
	ticketSvc := NewTicketService(ticketRepo, sheetRepo, familyRepo)

	sheets, err := sheetSvc.Generate(context.Background(), domain.LevelPrimary, domain.PackSizeMedium, 2)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, 1, sheets[0].StartNumber)
	assert.Equal(t, 25, sheets[1].StartNumber)

	// Only the first sheet goes to the family.
	_, err = sheetSvc.Assign(context.Background(), 1, sheets[0].ID)
	require.NoError(t, err)

	tickets, err := ticketSvc.ListByFamily(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, tickets, 24)
	assert.Equal(t, "P-250001", tickets[0].Code)
	assert.Equal(t, "P-250024", tickets[23].Code)
}
