package sections

import "github.com/jonathan/resume-builder/internal/types"

// NextItemID allocates an id for a new item in an item-list section:
// max(existing ids, 0) + 1. Ids are monotonic within a list and never reused
// after a delete, so in-flight UI references stay unambiguous. They are not
// globally unique across lists.
func NextItemID(items []types.SectionItem) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

// EmptyPayload returns the zero payload for a section type. One case per
// variant of the tagged union.
func EmptyPayload(sectionType types.SectionType) types.CustomSectionPayload {
	switch sectionType {
	case types.SectionTypeItemList:
		return types.CustomSectionPayload{Type: sectionType, Items: []types.SectionItem{}}
	case types.SectionTypeStringList:
		return types.CustomSectionPayload{Type: sectionType, Strings: []string{}}
	default:
		return types.CustomSectionPayload{Type: types.SectionTypeText}
	}
}

// AppendEntry adds one entry to a custom section payload, dispatching on the
// payload variant: a paragraph for text sections, a titled item for item
// lists, a bare string for string lists. Returns a new payload value.
func AppendEntry(payload types.CustomSectionPayload, entry string) types.CustomSectionPayload {
	switch payload.Type {
	case types.SectionTypeItemList:
		item := types.SectionItem{
			ID:          NextItemID(payload.Items),
			Title:       entry,
			Description: []string{},
		}
		items := make([]types.SectionItem, 0, len(payload.Items)+1)
		items = append(items, payload.Items...)
		payload.Items = append(items, item)
	case types.SectionTypeStringList:
		strs := make([]string, 0, len(payload.Strings)+1)
		strs = append(strs, payload.Strings...)
		payload.Strings = append(strs, entry)
	default:
		if payload.Text == "" {
			payload.Text = entry
		} else {
			payload.Text += "\n" + entry
		}
	}
	return payload
}

// RemoveItem deletes the item with the given id from an item-list payload.
// Unknown ids return the payload unchanged. Remaining ids are untouched, so
// a freed id is never handed out again within the session.
func RemoveItem(payload types.CustomSectionPayload, itemID int) types.CustomSectionPayload {
	if payload.Type != types.SectionTypeItemList {
		return payload
	}
	items := make([]types.SectionItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	payload.Items = items
	return payload
}
