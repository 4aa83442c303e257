package services

import (
	"sort"
	"strings"

	"frontdesk/dto"
	"frontdesk/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const minGuestSimilarity = 0.6

// normalizeName transliterates and lower-cases a name so Hebrew and Latin spellings compare.
func normalizeName(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// similarity is 1 minus the edit distance over the longer length.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1.0 - float64(distance)/float64(maxLen)
}

// guestScore is 1 for substring hits, otherwise the best similarity against the
// full name or any of its words.
func guestScore(query, name string) float64 {
	if query == "" || name == "" {
		return 0
	}
	if strings.Contains(name, query) {
		return 1
	}
	best := similarity(query, name)
	for _, word := range strings.Fields(name) {
		if s := similarity(query, word); s > best {
			best = s
		}
	}
	return best
}

// searchGuests ranks bookings by guest-name match and suggests the closest known name.
func searchGuests(query string, bookings []models.Booking) dto.BookingSearchResponse {
	q := normalizeName(query)
	resp := dto.BookingSearchResponse{Results: []dto.ScoredBooking{}}
	if q == "" {
		return resp
	}

	seen := map[string]string{}
	var names []string
	for _, b := range bookings {
		name := normalizeName(b.GuestName)
		if name != "" {
			if _, ok := seen[name]; !ok {
				seen[name] = b.GuestName
				names = append(names, name)
			}
		}
		if score := guestScore(q, name); score >= minGuestSimilarity {
			resp.Results = append(resp.Results, dto.ScoredBooking{Booking: b, Score: score})
		}
	}

	sort.SliceStable(resp.Results, func(i, j int) bool {
		return resp.Results[i].Score > resp.Results[j].Score
	})

	if len(names) > 0 && (len(resp.Results) == 0 || resp.Results[0].Score < 1) {
		cm := closestmatch.New(names, []int{2, 3})
		if closest := cm.Closest(q); closest != "" {
			resp.Suggestion = seen[closest]
		}
	}
	return resp
}
