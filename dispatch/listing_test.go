package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expresocargas/models"
)

func TestPartition(t *testing.T) {
	preorders := []models.Preorder{
		{ID: 1, Status: models.PreorderPending},                    // unassigned
		{ID: 2, Status: models.PreorderPending},                    // in a preparing run
		{ID: 3, Status: models.PreorderPending},                    // in a run in transit
		{ID: 4, Status: models.PreorderPending},                    // in an arrived run
		{ID: 5, Status: models.PreorderCompleted},                  // completed on its own
		{ID: 6, Status: models.PreorderCancelled},                  // cancelled, unassigned
		{ID: 7, Status: models.PreorderCancelled},                  // cancelled inside a run
	}
	containers := []models.Container{
		{ID: 10, Status: models.ContainerPreparing, PreorderIDs: []int64{2}},
		{ID: 11, Status: models.ContainerInTransit, PreorderIDs: []int64{3, 7}},
		{ID: 12, Status: models.ContainerArrived, PreorderIDs: []int64{4}},
	}

	tabs := Partition(preorders, containers)

	ids := func(tab Tab) []int64 {
		var out []int64
		for _, p := range tabs[tab] {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1}, ids(TabAvailable))
	assert.Equal(t, []int64{2, 3}, ids(TabInTransit))
	assert.Equal(t, []int64{4, 5}, ids(TabCompleted))

	// cancelled preorders appear nowhere
	total := len(tabs[TabAvailable]) + len(tabs[TabInTransit]) + len(tabs[TabCompleted])
	assert.Equal(t, 5, total)
}

func TestPartitionEmptyInputs(t *testing.T) {
	tabs := Partition(nil, nil)
	require.NotNil(t, tabs[TabAvailable])
	assert.Empty(t, tabs[TabAvailable])
	assert.Empty(t, tabs[TabInTransit])
	assert.Empty(t, tabs[TabCompleted])
}

func TestPaginate(t *testing.T) {
	list := make([]models.Preorder, 25)
	for i := range list {
		list[i] = models.Preorder{ID: int64(i + 1)}
	}

	page1 := Paginate(list, 1, 10)
	require.Len(t, page1, 10)
	assert.Equal(t, int64(1), page1[0].ID)

	page3 := Paginate(list, 3, 10)
	require.Len(t, page3, 5)
	assert.Equal(t, int64(21), page3[0].ID)

	assert.Empty(t, Paginate(list, 4, 10))

	// page below 1 clamps to the first page
	assert.Equal(t, int64(1), Paginate(list, 0, 10)[0].ID)

	// non-positive limit disables slicing
	assert.Len(t, Paginate(list, 1, 0), 25)
}
