package sharetelemetry

import "sort"

// A RankingItem is one driver's entry in a competition ranking. Total is the
// sum over every configured event group of the driver's best time within that
// group, in milliseconds. A driver is valid only when they recorded a best
// time in every configured event group; groups without one contribute nothing
// to the total.
type RankingItem struct {
	Position int
	DriverID int64
	Total    int64
	IsValid  bool

	// BestResults is the driver's group -> session -> best time map, nil when
	// the driver recorded nothing at all.
	BestResults map[int64]map[int64]int64
}

// CalculateRanking builds the ranking for the given roster order. Every id in
// driverIDs produces exactly one RankingItem, duplicates included. The sort
// places valid drivers first, then orders each validity band ascending by
// total, except that a total of exactly zero sorts last within its band: a
// zero total means no comparable time even when the driver is nominally
// valid. Ties keep roster order. Positions are assigned after the sort.
func CalculateRanking(best BestResults, driverIDs []int64, eventGroups []*EventGroup) []*RankingItem {
	items := make([]*RankingItem, 0, len(driverIDs))

	for _, driverID := range driverIDs {
		item := &RankingItem{
			DriverID:    driverID,
			IsValid:     true,
			BestResults: best.ForDriver(driverID),
		}

		for _, group := range eventGroups {
			sessions := item.BestResults[group.ID]

			if len(sessions) == 0 {
				item.IsValid = false
				continue
			}

			var groupBest int64

			for _, lapTime := range sessions {
				if groupBest == 0 || lapTime < groupBest {
					groupBest = lapTime
				}
			}

			item.Total += groupBest
		}

		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsValid != items[j].IsValid {
			return items[i].IsValid
		}

		if (items[i].Total == 0) != (items[j].Total == 0) {
			return items[j].Total == 0
		}

		return items[i].Total < items[j].Total
	})

	for index, item := range items {
		item.Position = index + 1
	}

	return items
}
