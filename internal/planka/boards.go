package planka

import (
	"context"
	"sort"
)

// CreateBoard creates a board inside a project.
func (c *Client) CreateBoard(ctx context.Context, projectID, name string, position float64) (Item, error) {
	return c.postItem(ctx, "/api/projects/"+projectID+"/boards", map[string]any{
		"name":     name,
		"position": position,
	})
}

// Board fetches a board. The raw body is returned unmodified: it
// carries a sibling `included` map with the board's lists and cards,
// which callers group client-side (see GroupBoard).
func (c *Client) Board(ctx context.Context, boardID string) (Item, error) {
	return c.getRaw(ctx, "/api/boards/"+boardID)
}

// BoardUpdate holds the optional fields of a board update.
type BoardUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Position *float64 `json:"position,omitempty"`
}

// UpdateBoard patches a board with only the fields set in upd.
func (c *Client) UpdateBoard(ctx context.Context, boardID string, upd BoardUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/boards/"+boardID, upd)
}

// DeleteBoard deletes a board.
func (c *Client) DeleteBoard(ctx context.Context, boardID string) error {
	return c.delete(ctx, "/api/boards/"+boardID)
}

// BoardActions lists the activity recorded on a board, newest first
// as returned by the server.
func (c *Client) BoardActions(ctx context.Context, boardID string) ([]Item, error) {
	return c.getItems(ctx, "/api/boards/"+boardID+"/actions")
}

// BoardList is one list on a board together with its cards, derived
// from the `included` side-payload of a board fetch.
type BoardList struct {
	ID       string
	Name     string
	Position float64
	Cards    []Item
}

// GroupBoard arranges a raw board response into its lists ordered by
// position, each holding its cards grouped by listId and ordered by
// position. Ties keep the server's original order. A missing position
// sorts as zero, matching the server's treatment of nulls.
func GroupBoard(board Item) []BoardList {
	included, _ := board["included"].(map[string]any)
	lists := itemSlice(included["lists"])
	cards := itemSlice(included["cards"])

	out := make([]BoardList, 0, len(lists))
	for _, l := range lists {
		out = append(out, BoardList{
			ID:       stringField(l, "id"),
			Name:     stringField(l, "name"),
			Position: numberField(l, "position"),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })

	index := make(map[string]int, len(out))
	for i, l := range out {
		index[l.ID] = i
	}
	for _, card := range cards {
		if i, ok := index[stringField(card, "listId")]; ok {
			out[i].Cards = append(out[i].Cards, card)
		}
	}
	for i := range out {
		cards := out[i].Cards
		sort.SliceStable(cards, func(a, b int) bool {
			return numberField(cards[a], "position") < numberField(cards[b], "position")
		})
	}
	return out
}

func itemSlice(v any) []Item {
	raw, _ := v.([]any)
	items := make([]Item, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

func stringField(item Item, key string) string {
	s, _ := item[key].(string)
	return s
}

func numberField(item Item, key string) float64 {
	f, _ := item[key].(float64)
	return f
}
