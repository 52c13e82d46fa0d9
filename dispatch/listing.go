package dispatch

import "expresocargas/models"

// Listing tabs for the package views.
type Tab string

const (
	TabAvailable Tab = "disponibles"
	TabInTransit Tab = "en_viaje"
	TabCompleted Tab = "finalizados"
)

// Partition splits preorders into the listing tabs by intersecting each
// preorder's own status with the delivery-run manifests: a preorder is
// completed when its own status says so or it sits in an arrived run; in
// transit when assigned to a run that has not arrived; otherwise available
// unless cancelled. Cancelled preorders fall out of every tab.
func Partition(preorders []models.Preorder, containers []models.Container) map[Tab][]models.Preorder {
	containerStatus := make(map[int64]string)
	for _, c := range containers {
		for _, id := range c.PreorderIDs {
			containerStatus[id] = c.Status
		}
	}

	tabs := map[Tab][]models.Preorder{
		TabAvailable: {},
		TabInTransit: {},
		TabCompleted: {},
	}

	for _, p := range preorders {
		status, assigned := containerStatus[p.ID]
		switch {
		case p.Status == models.PreorderCompleted || (assigned && status == models.ContainerArrived):
			tabs[TabCompleted] = append(tabs[TabCompleted], p)
		case p.Status == models.PreorderCancelled:
			// dropped from every tab
		case assigned:
			tabs[TabInTransit] = append(tabs[TabInTransit], p)
		default:
			tabs[TabAvailable] = append(tabs[TabAvailable], p)
		}
	}

	return tabs
}

// Paginate slices an already-filtered list. Pagination always runs after tab
// filtering, never before. Page numbers start at 1.
func Paginate(list []models.Preorder, page, limit int) []models.Preorder {
	if limit < 1 {
		limit = len(list)
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(list) {
		return []models.Preorder{}
	}
	end := start + limit
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
