package tbo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func fixedClock(day string) func() time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestService(baseURL string) *DefaultTBOService {
	svc := NewTBOService(baseURL, "user", "pass", DefaultTables())
	svc.Now = fixedClock("2025-06-15")
	return svc
}

func TestResolveHotelCodes_MappedCity(t *testing.T) {
	svc := newTestService("http://unreachable.invalid")

	got := svc.ResolveHotelCodes(context.Background(), "100765")

	want := DefaultTables().CityHotelCodes["100765"][:10]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveHotelCodes(100765) = %v, want first 10 table entries %v", got, want)
	}
}

func TestResolveHotelCodes_RegionMapping(t *testing.T) {
	// Region 965847972 maps to city 130443, which has no curated codes;
	// the upstream call fails, so the fallback list applies.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	svc := newTestService(srv.URL)

	got := svc.ResolveHotelCodes(context.Background(), "965847972")

	want := DefaultTables().FallbackHotelCodes[:10]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveHotelCodes(965847972) = %v, want fallback %v", got, want)
	}
}

func TestResolveHotelCodes_UnmappedRegionUsedAsCityCode(t *testing.T) {
	var gotCity string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		decodeBody(t, r, &body)
		gotCity, _ = body["CityCode"].(string)
		writeJSON(w, map[string]interface{}{
			"Hotels": []map[string]interface{}{
				{"HotelCode": "9001"},
				{"HotelCode": "9002"},
			},
		})
	}))
	defer srv.Close()
	svc := newTestService(srv.URL)

	got := svc.ResolveHotelCodes(context.Background(), "555999")

	if gotCity != "555999" {
		t.Errorf("upstream CityCode = %q, want unmapped input passed through", gotCity)
	}
	if want := []string{"9001", "9002"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveHotelCodes(555999) = %v, want %v", got, want)
	}
}

func TestResolveHotelCodes_EmptyUpstreamFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"Hotels": []map[string]interface{}{}})
	}))
	defer srv.Close()
	svc := newTestService(srv.URL)

	got := svc.ResolveHotelCodes(context.Background(), "777000")

	want := DefaultTables().FallbackHotelCodes[:10]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveHotelCodes with empty upstream = %v, want fallback %v", got, want)
	}
}

func TestResolveHotelCodes_EnvelopeShapes(t *testing.T) {
	tests := []struct {
		name     string
		response map[string]interface{}
		want     []string
	}{
		{
			name: "data.Hotels",
			response: map[string]interface{}{
				"data": map[string]interface{}{
					"Hotels": []map[string]interface{}{{"Code": "11"}},
				},
			},
			want: []string{"11"},
		},
		{
			name: "HotelList",
			response: map[string]interface{}{
				"HotelList": []map[string]interface{}{{"Id": "22"}},
			},
			want: []string{"22"},
		},
		{
			name: "Data.Hotels",
			response: map[string]interface{}{
				"Data": map[string]interface{}{
					"Hotels": []map[string]interface{}{{"HotelCode": "33"}},
				},
			},
			want: []string{"33"},
		},
		{
			name: "Data as list",
			response: map[string]interface{}{
				"Data": []map[string]interface{}{{"Code": "44"}},
			},
			want: []string{"44"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.response)
			}))
			defer srv.Close()
			svc := newTestService(srv.URL)

			got := svc.ResolveHotelCodes(context.Background(), "888000")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveHotelCodes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMappedHotelCodes(t *testing.T) {
	svc := newTestService("http://unreachable.invalid")

	if got, want := svc.MappedHotelCodes("100765"), DefaultTables().CityHotelCodes["100765"][:10]; !reflect.DeepEqual(got, want) {
		t.Errorf("MappedHotelCodes(100765) = %v, want %v", got, want)
	}
	if got, want := svc.MappedHotelCodes("nope"), DefaultTables().FallbackHotelCodes[:10]; !reflect.DeepEqual(got, want) {
		t.Errorf("MappedHotelCodes(nope) = %v, want fallback %v", got, want)
	}
}

func TestCoerceDates(t *testing.T) {
	tests := []struct {
		name         string
		checkIn      string
		checkOut     string
		wantCheckIn  string
		wantCheckOut string
	}{
		{
			name:    "today becomes tomorrow",
			checkIn: "2025-06-15", checkOut: "2025-06-15",
			wantCheckIn: "2025-06-16", wantCheckOut: "2025-06-17",
		},
		{
			name:    "future dates pass through",
			checkIn: "2025-12-01", checkOut: "2025-12-05",
			wantCheckIn: "2025-12-01", wantCheckOut: "2025-12-05",
		},
		{
			name:    "past dates are pushed forward",
			checkIn: "2025-01-01", checkOut: "2025-01-02",
			wantCheckIn: "2025-06-16", wantCheckOut: "2025-06-17",
		},
		{
			name:    "empty dates default",
			checkIn: "", checkOut: "",
			wantCheckIn: "2025-06-16", wantCheckOut: "2025-06-17",
		},
		{
			// Check-out is compared against today, not against check-in, so
			// a future check-out before a future check-in survives intact.
			name:    "checkout independent of checkin",
			checkIn: "2025-12-10", checkOut: "2025-06-16",
			wantCheckIn: "2025-12-10", wantCheckOut: "2025-06-16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService("http://unreachable.invalid")
			gotIn, gotOut := svc.CoerceDates(tt.checkIn, tt.checkOut)
			if gotIn != tt.wantCheckIn || gotOut != tt.wantCheckOut {
				t.Errorf("CoerceDates(%q, %q) = (%q, %q), want (%q, %q)",
					tt.checkIn, tt.checkOut, gotIn, gotOut, tt.wantCheckIn, tt.wantCheckOut)
			}
		})
	}
}

func TestBuildSearchPayload(t *testing.T) {
	svc := newTestService("http://unreachable.invalid")

	body := map[string]interface{}{
		"CheckIn":      "2025-12-01",
		"CheckOut":     "2025-12-05",
		"country_code": "AE",
	}
	codes := []string{"1402689", "1405349"}

	payload := svc.BuildSearchPayload(body, codes)

	if got := payload["CheckIn"]; got != "2025-12-01" {
		t.Errorf("CheckIn = %v, want 2025-12-01", got)
	}
	if got := payload["CheckOut"]; got != "2025-12-05" {
		t.Errorf("CheckOut = %v, want 2025-12-05", got)
	}
	if got := payload["HotelCodes"]; got != "1402689,1405349" {
		t.Errorf("HotelCodes = %v, want comma-joined codes", got)
	}
	if got := payload["GuestNationality"]; got != "AE" {
		t.Errorf("GuestNationality = %v, want AE", got)
	}
	if got := payload["ResponseTime"]; got != 18 {
		t.Errorf("ResponseTime = %v, want 18", got)
	}
	if got := payload["IsDetailedResponse"]; got != true {
		t.Errorf("IsDetailedResponse = %v, want true", got)
	}

	filters, ok := payload["Filters"].(map[string]interface{})
	if !ok {
		t.Fatalf("Filters missing or wrong type: %v", payload["Filters"])
	}
	if filters["Refundable"] != true || filters["NoOfRooms"] != 0 || filters["MealType"] != "All" {
		t.Errorf("Filters = %v, want {Refundable:true NoOfRooms:0 MealType:All}", filters)
	}

	rooms, ok := payload["PaxRooms"].([]map[string]interface{})
	if !ok || len(rooms) != 1 {
		t.Fatalf("PaxRooms = %v, want one default room", payload["PaxRooms"])
	}
	room := rooms[0]
	if room["Adults"] != 1 || room["Children"] != 0 {
		t.Errorf("default room = %v, want Adults:1 Children:0", room)
	}
	if ages, ok := room["ChildrenAges"].([]int); !ok || len(ages) != 0 {
		t.Errorf("ChildrenAges = %v, want empty list", room["ChildrenAges"])
	}
}

func TestBuildSearchPayload_Guests(t *testing.T) {
	svc := newTestService("http://unreachable.invalid")

	body := map[string]interface{}{
		"checkin":  "2025-12-01",
		"checkout": "2025-12-05",
		"guests": []interface{}{
			map[string]interface{}{"adults": float64(2), "children": []interface{}{float64(4), float64(9)}},
			map[string]interface{}{},
		},
	}

	payload := svc.BuildSearchPayload(body, nil)

	if got := payload["GuestNationality"]; got != "AE" {
		t.Errorf("GuestNationality = %v, want default AE", got)
	}

	rooms := payload["PaxRooms"].([]map[string]interface{})
	if len(rooms) != 2 {
		t.Fatalf("PaxRooms has %d rooms, want 2", len(rooms))
	}
	if rooms[0]["Adults"] != 2 || rooms[0]["Children"] != 2 {
		t.Errorf("room 0 = %v, want Adults:2 Children:2", rooms[0])
	}
	if got, want := rooms[0]["ChildrenAges"].([]int), []int{4, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("room 0 ages = %v, want %v", got, want)
	}
	if rooms[1]["Adults"] != 1 || rooms[1]["Children"] != 0 {
		t.Errorf("room 1 = %v, want Adults:1 Children:0 default", rooms[1])
	}
}
