package sections

import "github.com/jonathan/resume-builder/internal/types"

// MoveUp swaps a section's order value with the neighbor directly above it.
// Only the two swapped sections change; every other section keeps its order
// untouched, which keeps reorder animations stable for the rest of the list.
// Rejected (input returned unchanged) when the section is already first, when
// the neighbor above is personalInfo, or when the id is unknown.
func MoveUp(metas []types.SectionMeta, sectionID string) []types.SectionMeta {
	if sectionID == IDPersonalInfo {
		return metas
	}

	sorted := SortByOrder(metas)
	idx, ok := findByID(sorted, sectionID)
	if !ok || idx == 0 {
		return metas
	}
	if sorted[idx-1].ID == IDPersonalInfo {
		return metas
	}

	return swapOrders(metas, sorted[idx].ID, sorted[idx-1].ID)
}

// MoveDown swaps a section's order value with the neighbor directly below it.
// Rejected when the section is already last, is personalInfo, or is unknown.
func MoveDown(metas []types.SectionMeta, sectionID string) []types.SectionMeta {
	if sectionID == IDPersonalInfo {
		return metas
	}

	sorted := SortByOrder(metas)
	idx, ok := findByID(sorted, sectionID)
	if !ok || idx == len(sorted)-1 {
		return metas
	}

	return swapOrders(metas, sorted[idx].ID, sorted[idx+1].ID)
}

// Reorder moves the dragged section (activeID) to the position currently held
// by overID. The dragged section takes the destination's order value and every
// section strictly between the old and new position shifts by exactly one
// order unit toward the vacated slot, so order values stay a dense permutation
// with no duplicates. A single pass, not a resort. Rejected when the
// destination is the first position (reserved for personalInfo), when either
// id is unknown, or when the two ids are equal.
func Reorder(metas []types.SectionMeta, activeID, overID string) []types.SectionMeta {
	if activeID == overID || activeID == IDPersonalInfo {
		return metas
	}

	sorted := SortByOrder(metas)
	oldIdx, okOld := findByID(sorted, activeID)
	newIdx, okNew := findByID(sorted, overID)
	if !okOld || !okNew || newIdx == 0 {
		return metas
	}

	oldOrder := sorted[oldIdx].Order
	newOrder := sorted[newIdx].Order

	reordered := make([]types.SectionMeta, len(metas))
	copy(reordered, metas)
	for i := range reordered {
		switch {
		case reordered[i].ID == activeID:
			reordered[i].Order = newOrder
		case oldOrder < newOrder && reordered[i].Order > oldOrder && reordered[i].Order <= newOrder:
			// Moving later: everything in between closes the gap upward.
			reordered[i].Order--
		case oldOrder > newOrder && reordered[i].Order >= newOrder && reordered[i].Order < oldOrder:
			// Moving earlier: everything in between shifts down by one.
			reordered[i].Order++
		}
	}
	return reordered
}

// swapOrders exchanges the order values of two sections identified by id.
func swapOrders(metas []types.SectionMeta, idA, idB string) []types.SectionMeta {
	swapped := make([]types.SectionMeta, len(metas))
	copy(swapped, metas)

	ia, oka := findByID(swapped, idA)
	ib, okb := findByID(swapped, idB)
	if !oka || !okb {
		return metas
	}

	swapped[ia].Order, swapped[ib].Order = swapped[ib].Order, swapped[ia].Order
	return swapped
}
