package vlr

import (
	"context"
	"log/slog"
	"sync"
	"vlrdata-backend/lib/htmlutil"
)

// one secondary fetch per canonical starting-lineup slot
const maxRosterFetches = 5

// FetchAvatars issues one concurrent batch of profile fetches for the given
// rosters of player ids and returns avatar URLs keyed by id. At most
// maxRosterFetches ids per roster are scheduled. Each fetch's outcome is
// independent: a failure (network, 404, no usable image) resolves that slot
// to "no avatar" and never fails the batch.
func FetchAvatars(ctx context.Context, fetcher Fetcher, rosters ...[]string) map[string]string {
	if fetcher == nil {
		return nil
	}

	var ids []string
	for _, roster := range rosters {
		if len(roster) > maxRosterFetches {
			roster = roster[:maxRosterFetches]
		}
		ids = append(ids, roster...)
	}
	if len(ids) == 0 {
		return nil
	}

	// each goroutine writes a disjoint slot, so no locking is needed
	avatars := make([]string, len(ids))
	wg := sync.WaitGroup{}
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()

			doc, err := fetcher.FetchDocument(ctx, "/player/"+id)
			if err != nil {
				slog.DebugContext(ctx, "avatar fetch failed", "player", id, "err", err)
				return
			}
			avatars[i] = ResolveImageURL(htmlutil.Resolve(
				doc.Selection, skipPlaceholder, avatarStrategies...,
			))
		}(i, id)
	}
	wg.Wait()

	out := make(map[string]string, len(ids))
	for i, id := range ids {
		if avatars[i] != "" {
			out[id] = avatars[i]
		}
	}
	return out
}

// enrichPlayerAvatars fills missing avatars across a match's maps. Ids are
// deduplicated across maps and grouped per team so the roster cap applies
// per lineup, then fetched as a single batch.
func enrichPlayerAvatars(ctx context.Context, fetcher Fetcher, detail *MatchDetail) {
	if fetcher == nil {
		return
	}

	seen := map[string]bool{}
	idsByTeam := map[string][]string{}
	var teamOrder []string
	for _, m := range detail.Maps {
		for _, p := range m.Players {
			if p.ID == "" || p.Avatar != "" || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			if _, ok := idsByTeam[p.Team]; !ok {
				teamOrder = append(teamOrder, p.Team)
			}
			idsByTeam[p.Team] = append(idsByTeam[p.Team], p.ID)
		}
	}
	if len(teamOrder) == 0 {
		return
	}

	rosters := make([][]string, 0, len(teamOrder))
	for _, team := range teamOrder {
		rosters = append(rosters, idsByTeam[team])
	}

	avatars := FetchAvatars(ctx, fetcher, rosters...)
	for mi := range detail.Maps {
		for pi := range detail.Maps[mi].Players {
			p := &detail.Maps[mi].Players[pi]
			if p.Avatar == "" && p.ID != "" {
				p.Avatar = avatars[p.ID]
			}
		}
	}
}
