package planka

import "testing"

func boardFixture() Item {
	return Item{
		"item": map[string]any{"id": "20", "name": "Sprint"},
		"included": map[string]any{
			"lists": []any{
				map[string]any{"id": "l2", "name": "Doing", "position": float64(2)},
				map[string]any{"id": "l1", "name": "Backlog", "position": float64(1)},
				map[string]any{"id": "l3", "name": "Done", "position": float64(3)},
			},
			"cards": []any{
				map[string]any{"id": "c3", "name": "third", "listId": "l1", "position": float64(30)},
				map[string]any{"id": "c1", "name": "first", "listId": "l1", "position": float64(10)},
				map[string]any{"id": "c2", "name": "second", "listId": "l2", "position": float64(20)},
				map[string]any{"id": "cx", "name": "orphan", "listId": "missing", "position": float64(1)},
			},
		},
	}
}

func TestGroupBoard(t *testing.T) {
	lists := GroupBoard(boardFixture())

	if len(lists) != 3 {
		t.Fatalf("got %d lists, want 3", len(lists))
	}

	wantOrder := []string{"Backlog", "Doing", "Done"}
	for i, want := range wantOrder {
		if lists[i].Name != want {
			t.Errorf("lists[%d] = %q, want %q", i, lists[i].Name, want)
		}
	}

	backlog := lists[0]
	if len(backlog.Cards) != 2 {
		t.Fatalf("Backlog has %d cards, want 2", len(backlog.Cards))
	}
	if backlog.Cards[0]["id"] != "c1" || backlog.Cards[1]["id"] != "c3" {
		t.Errorf("Backlog cards out of position order: %v, %v",
			backlog.Cards[0]["id"], backlog.Cards[1]["id"])
	}

	if len(lists[1].Cards) != 1 || lists[1].Cards[0]["id"] != "c2" {
		t.Errorf("Doing cards = %v, want [c2]", lists[1].Cards)
	}
	if len(lists[2].Cards) != 0 {
		t.Errorf("Done should have no cards, got %v", lists[2].Cards)
	}
}

func TestGroupBoard_StableTies(t *testing.T) {
	board := Item{
		"included": map[string]any{
			"lists": []any{
				map[string]any{"id": "l1", "name": "A", "position": float64(1)},
			},
			"cards": []any{
				map[string]any{"id": "c1", "listId": "l1", "position": float64(5)},
				map[string]any{"id": "c2", "listId": "l1", "position": float64(5)},
				map[string]any{"id": "c3", "listId": "l1", "position": float64(5)},
			},
		},
	}

	lists := GroupBoard(board)
	if len(lists) != 1 {
		t.Fatalf("got %d lists, want 1", len(lists))
	}
	for i, want := range []string{"c1", "c2", "c3"} {
		if lists[0].Cards[i]["id"] != want {
			t.Errorf("tied cards must keep arrival order, Cards[%d] = %v, want %s",
				i, lists[0].Cards[i]["id"], want)
		}
	}
}

func TestGroupBoard_MissingPosition(t *testing.T) {
	board := Item{
		"included": map[string]any{
			"lists": []any{
				map[string]any{"id": "l1", "name": "A", "position": float64(5)},
				map[string]any{"id": "l2", "name": "B"},
			},
			"cards": []any{},
		},
	}

	lists := GroupBoard(board)
	if lists[0].Name != "B" {
		t.Errorf("a missing position sorts as zero, first list = %q, want B", lists[0].Name)
	}
}

func TestGroupBoard_Empty(t *testing.T) {
	if lists := GroupBoard(Item{}); len(lists) != 0 {
		t.Errorf("empty board should yield no lists, got %v", lists)
	}
}
