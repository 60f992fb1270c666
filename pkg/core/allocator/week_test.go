package allocator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/vaccination-hubs/pkg/core/model"
)

func TestWeekAllocate_NoDoubleAllocation(t *testing.T) {
	c := newTestCampaign(t, 40, 80, 30)
	c.addHub(t, "Milano", 2, 2, 1)
	c.addHub(t, "Torino", 1, 1, 1)
	require.NoError(t, c.hours.SetHours(1, 1, 1, 1, 1, 0, 0))

	week, err := c.allocator.WeekAllocate()
	require.NoError(t, err)
	require.Len(t, week, 7)

	seen := make(map[string]bool)
	total := 0
	for day, dayAllocation := range week {
		require.Len(t, dayAllocation, 2, "day %d", day)
		for hub, ids := range dayAllocation {
			for _, id := range ids {
				assert.False(t, seen[id], "%s allocated twice (day %d, hub %s)", id, day, hub)
				seen[id] = true
			}
			total += len(ids)
		}
	}

	// 30 slots per working day over 5 days
	assert.Equal(t, 150, total)
	assert.Equal(t, total, c.allocator.Ledger().Size())

	// Weekend days have no hours
	assert.Empty(t, week[5]["Milano"])
	assert.Empty(t, week[6]["Torino"])
}

func TestWeekAllocate_OldestServedFirst(t *testing.T) {
	c := newTestCampaign(t, 40, 40, 40)
	c.addHub(t, "Torino", 2, 2, 1)
	require.NoError(t, c.hours.SetHours(1, 0, 0, 0, 0, 0, 0))

	week, err := c.allocator.WeekAllocate()
	require.NoError(t, err)

	// n=20: old 8 (n=12), middle 4 (n=8), young 3 (n=5), leftover 5 old
	monday := week[0]["Torino"]
	require.Len(t, monday, 20)
	assert.Equal(t, 13, countPrefix(monday, 'O'))
	assert.Equal(t, 4, countPrefix(monday, 'M'))
	assert.Equal(t, 3, countPrefix(monday, 'Y'))
}

func TestWeekAllocate_ReproducibleAfterClear(t *testing.T) {
	c := newTestCampaign(t, 40, 80, 30)
	c.addHub(t, "Milano", 2, 2, 1)
	c.addHub(t, "Torino", 1, 1, 1)
	require.NoError(t, c.hours.SetHours(2, 1, 1, 3, 1, 0, 1))

	first, err := c.allocator.WeekAllocate()
	require.NoError(t, err)
	firstLedger := c.allocator.Ledger().IDs()
	firstCounts := c.allocator.AllocatedByInterval()

	c.allocator.ClearAllocation()
	assert.Equal(t, 0, c.allocator.Ledger().Size())

	second, err := c.allocator.WeekAllocate()
	require.NoError(t, err)

	assert.Equal(t, firstLedger, c.allocator.Ledger().IDs())
	assert.Equal(t, firstCounts, c.allocator.AllocatedByInterval())
	assert.Equal(t, first, second)
}

func TestWeekAllocate_WithoutClearAllocatesNobodyTwice(t *testing.T) {
	c := newTestCampaign(t, 5, 5, 5)
	c.addHub(t, "Torino", 10, 9, 5)
	require.NoError(t, c.hours.SetHours(1, 1, 1, 1, 1, 1, 1))

	_, err := c.allocator.WeekAllocate()
	require.NoError(t, err)
	assert.Equal(t, 15, c.allocator.Ledger().Size())

	week, err := c.allocator.WeekAllocate()
	require.NoError(t, err)
	for _, dayAllocation := range week {
		assert.Empty(t, dayAllocation["Torino"])
	}
}

func TestWeekAllocate_CapacityUndefinedFailsFast(t *testing.T) {
	c := newTestCampaign(t, 10, 10, 10)
	c.addHub(t, "Alpha", 2, 2, 1)
	require.NoError(t, c.hubs.Define("Beta"))
	require.NoError(t, c.hours.SetHours(1, 1, 1, 1, 1, 1, 1))

	week, err := c.allocator.WeekAllocate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrCapacityUndefined))
	assert.Contains(t, err.Error(), `"Beta"`)
	assert.Nil(t, week)

	// Alpha was allocated before Beta failed and is not rolled back
	assert.Equal(t, 20, c.allocator.Ledger().Size())
}

func TestWeekAllocate_NoHubs(t *testing.T) {
	c := newTestCampaign(t, 5, 5, 5)

	week, err := c.allocator.WeekAllocate()
	require.NoError(t, err)
	require.Len(t, week, 7)
	for _, dayAllocation := range week {
		assert.Empty(t, dayAllocation)
	}
}

func TestClearAllocation_LeavesCatalogsUntouched(t *testing.T) {
	c := newTestCampaign(t, 5, 5, 5)
	c.addHub(t, "Torino", 10, 9, 5)
	require.NoError(t, c.hours.SetHours(1, 1, 1, 1, 1, 1, 1))

	_, err := c.allocator.WeekAllocate()
	require.NoError(t, err)

	c.allocator.ClearAllocation()

	assert.Equal(t, 0, c.allocator.Ledger().Size())
	assert.Equal(t, 15, c.people.Count())
	assert.Equal(t, []string{"Torino"}, c.hubs.Names())
	assert.Equal(t, []string{"[0,40)", "[40,60)", "[60,+)"}, c.partition.Labels())
}
