package scheduler

import (
	"testing"

	"github.com/khalidh223/planit/internal/domain"
)

func TestFirstFit_AllocatesPrefixOfFirstBlockWithRoom(t *testing.T) {
	blocks := []domain.TimeRange{mustRange(t, "9am-10am"), mustRange(t, "11am-3pm")}
	allocated, remaining, ok := firstFit(blocks, 2)
	if !ok {
		t.Fatal("expected a placement")
	}
	if allocated.String() != "9:00AM-10:00AM" {
		t.Errorf("got %v, want first block fully consumed (only 1h available)", allocated)
	}
	if len(remaining) != 1 || remaining[0].String() != "11:00AM-3:00PM" {
		t.Errorf("got remaining %v", remaining)
	}
}

func TestFirstFit_PartiallyConsumesBlock(t *testing.T) {
	blocks := []domain.TimeRange{mustRange(t, "9am-5pm")}
	allocated, remaining, ok := firstFit(blocks, 2)
	if !ok {
		t.Fatal("expected a placement")
	}
	if allocated.String() != "9:00AM-11:00AM" {
		t.Errorf("got %v, want 9-11am consumed", allocated)
	}
	if len(remaining) != 1 || remaining[0].String() != "11:00AM-5:00PM" {
		t.Errorf("got remaining %v", remaining)
	}
}

func TestFirstFit_NoBlocksReturnsNotPlaced(t *testing.T) {
	_, remaining, ok := firstFit(nil, 2)
	if ok {
		t.Fatal("did not expect a placement with no free blocks")
	}
	if remaining != nil {
		t.Errorf("got %v, want nil", remaining)
	}
}

func TestFirstFit_ExactlyConsumesBlock(t *testing.T) {
	blocks := []domain.TimeRange{mustRange(t, "9am-11am")}
	allocated, remaining, ok := firstFit(blocks, 2)
	if !ok {
		t.Fatal("expected a placement")
	}
	if allocated.String() != "9:00AM-11:00AM" {
		t.Errorf("got %v", allocated)
	}
	if len(remaining) != 0 {
		t.Errorf("got remaining %v, want none left once the block is fully consumed", remaining)
	}
}
