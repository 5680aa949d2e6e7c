package tbo

import (
	"context"

	"travelgate/models"
	"travelgate/utils"
)

var hotelCodeExtractors = []extraction{
	atPath("data", "Hotels"),
	atPath("Hotels"),
	atPath("HotelList"),
	atPath("Data", "Hotels"),
	atPath("Data"),
}

// ResolveHotelCodes maps a region id or city code to a bounded hotel-code
// list. Resolution is best-effort: the static tables are consulted first,
// then the hotel-code-list API, and any failure degrades to the fixed
// fallback list so a search never hard-fails on code resolution alone.
func (s *DefaultTBOService) ResolveHotelCodes(ctx context.Context, candidate string) []string {
	cityCode, ok := s.Tables.RegionToCity[candidate]
	if !ok {
		// Unknown region id: treat the input itself as the city code.
		cityCode = candidate
	}

	if codes, ok := s.Tables.CityHotelCodes[cityCode]; ok {
		return truncate(codes, 10)
	}

	raw, err := s.HotelCodeList(ctx, map[string]interface{}{
		"CityCode":           cityCode,
		"IsDetailedResponse": "true",
	})
	if err != nil {
		return truncate(s.Tables.FallbackHotelCodes, 10)
	}

	codes := extractHotelCodes(raw)
	if len(codes) == 0 {
		return truncate(s.Tables.FallbackHotelCodes, 10)
	}
	return codes
}

// MappedHotelCodes consults the static tables only; absent cities get the
// fallback list. Used by the combined search path, which never calls the
// hotel-code-list API.
func (s *DefaultTBOService) MappedHotelCodes(cityCode string) []string {
	codes, ok := s.Tables.CityHotelCodes[cityCode]
	if !ok {
		codes = s.Tables.FallbackHotelCodes
	}
	return truncate(codes, 10)
}

func extractHotelCodes(raw map[string]interface{}) []string {
	var hotels []map[string]interface{}
	for _, extract := range hotelCodeExtractors {
		if v, ok := extract(raw); ok {
			if list, ok := asMapList(v); ok {
				hotels = list
				break
			}
		}
	}

	codes := make([]string, 0, len(hotels))
	for _, hotel := range hotels {
		var id interface{}
		for _, key := range []string{"Code", "HotelCode", "Id"} {
			if v, ok := hotel[key]; ok && v != nil {
				id = v
				break
			}
		}
		if code := utils.Stringify(id); code != "" {
			codes = append(codes, code)
		}
		if len(codes) == 50 {
			break
		}
	}
	return codes
}

func truncate(codes []string, n int) []string {
	if len(codes) > n {
		return codes[:n]
	}
	return codes
}

// CoerceDates pushes both search dates into the future relative to the
// call time. A date is kept only when it is strictly after today's date
// (string comparison on ISO dates); otherwise check-in becomes tomorrow
// and check-out the day after tomorrow. Check-out is compared against
// today, not against the resolved check-in.
func (s *DefaultTBOService) CoerceDates(checkIn, checkOut string) (string, string) {
	now := s.Now().UTC()
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	dayAfter := now.AddDate(0, 0, 2).Format("2006-01-02")

	finalCheckIn := tomorrow
	if checkIn != "" && checkIn > today {
		finalCheckIn = checkIn
	}
	finalCheckOut := dayAfter
	if checkOut != "" && checkOut > today {
		finalCheckOut = checkOut
	}
	return finalCheckIn, finalCheckOut
}

// BuildSearchPayload assembles the TBO search body from a free-form client
// body plus the resolved hotel codes.
func (s *DefaultTBOService) BuildSearchPayload(body map[string]interface{}, hotelCodes []string) map[string]interface{} {
	checkIn := utils.Stringify(firstPresent(body, "CheckIn", "checkin"))
	checkOut := utils.Stringify(firstPresent(body, "CheckOut", "checkout"))
	checkIn, checkOut = s.CoerceDates(checkIn, checkOut)

	nationality := utils.Stringify(firstPresent(body, "CountryCode", "country_code"))
	if nationality == "" {
		nationality = "AE"
	}

	return map[string]interface{}{
		"CheckIn":            checkIn,
		"CheckOut":           checkOut,
		"HotelCodes":         joinCodes(hotelCodes),
		"GuestNationality":   nationality,
		"PaxRooms":           paxRooms(body["guests"]),
		"ResponseTime":       18,
		"IsDetailedResponse": true,
		"Filters": map[string]interface{}{
			"Refundable": true,
			"NoOfRooms":  0,
			"MealType":   "All",
		},
	}
}

func firstPresent(m map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			if str, isStr := v.(string); isStr && str == "" {
				continue
			}
			return v
		}
	}
	return nil
}

func joinCodes(codes []string) string {
	joined := ""
	for i, code := range codes {
		if i > 0 {
			joined += ","
		}
		joined += code
	}
	return joined
}

// paxRooms maps client guest groups to TBO room occupancy. A missing guest
// list defaults to one room with one adult.
func paxRooms(guests interface{}) []map[string]interface{} {
	groups, ok := guestGroups(guests)
	if !ok {
		return []map[string]interface{}{
			{"Adults": 1, "Children": 0, "ChildrenAges": []int{}},
		}
	}

	rooms := make([]map[string]interface{}, 0, len(groups))
	for _, g := range groups {
		adults := 1
		if n, err := utils.ToInt64(g.Adults); err == nil && n > 0 {
			adults = int(n)
		}
		ages := g.Children
		if ages == nil {
			ages = []int{}
		}
		rooms = append(rooms, map[string]interface{}{
			"Adults":       adults,
			"Children":     len(ages),
			"ChildrenAges": ages,
		})
	}
	return rooms
}

type guestGroup struct {
	Adults   interface{}
	Children []int
}

func guestGroups(v interface{}) ([]guestGroup, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []models.GuestGroup:
		if t == nil {
			return nil, false
		}
		groups := make([]guestGroup, 0, len(t))
		for _, g := range t {
			groups = append(groups, guestGroup{Adults: g.Adults, Children: g.Children})
		}
		return groups, true
	case []interface{}:
		groups := make([]guestGroup, 0, len(t))
		for _, item := range t {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			g := guestGroup{Adults: m["adults"]}
			if ages, ok := m["children"].([]interface{}); ok {
				g.Children = make([]int, 0, len(ages))
				for _, age := range ages {
					if n, err := utils.ToInt64(age); err == nil {
						g.Children = append(g.Children, int(n))
					}
				}
			}
			groups = append(groups, g)
		}
		return groups, true
	default:
		return nil, false
	}
}
