package models

import (
	"fmt"
	"strings"
	"time"

	"frontdesk/constants"
)

// Location is one guesthouse with its fixed list of rooms.
type Location struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Rooms []string `json:"rooms"`
}

// Locations lists the guesthouses in board order.
var Locations = []Location{
	{
		ID:    constants.LocationRothschild,
		Name:  "Rothschild 79",
		Rooms: []string{"1a", "3a", "4", "6", "13", "17", "21", "106"},
	},
	{
		ID:    constants.LocationAirport,
		Name:  "Airport Guest House",
		Rooms: []string{"1", "2", "3", "5", "6", "7", "8", "9"},
	},
}

// FindLocation looks a location up by id.
func FindLocation(id string) (Location, bool) {
	for _, loc := range Locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}

// HasRoom reports whether the room belongs to the location.
func (l Location) HasRoom(room string) bool {
	for _, r := range l.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

type RoomStatus string

const (
	RoomStatusEmpty    RoomStatus = constants.RoomStatusEmpty
	RoomStatusCheckIn  RoomStatus = constants.RoomStatusCheckIn
	RoomStatusOccupied RoomStatus = constants.RoomStatusOccupied
	RoomStatusDirty    RoomStatus = constants.RoomStatusDirty
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusEmpty, RoomStatusCheckIn, RoomStatusOccupied, RoomStatusDirty:
		return true
	}
	return false
}

// RoomDayRecord is the state of one room on one day.
type RoomDayRecord struct {
	GuestName     string     `json:"guestName"`
	Status        RoomStatus `json:"status"`
	OccupiedUntil *string    `json:"occupiedUntil,omitempty"`
}

// EmptyRecord is what an absent key reads as.
func EmptyRecord() RoomDayRecord {
	return RoomDayRecord{Status: RoomStatusEmpty}
}

// IsDefault reports whether the record carries nothing worth storing.
func (r RoomDayRecord) IsDefault() bool {
	return (r.Status == RoomStatusEmpty || r.Status == "") && r.GuestName == "" && r.OccupiedUntil == nil
}

// Flagged marks urgent rows: the desk writes "!" into the guest name.
func (r RoomDayRecord) Flagged() bool {
	return strings.Contains(r.GuestName, "!")
}

func (r RoomDayRecord) ValidateStatus() error {
	if !r.Status.Valid() {
		return fmt.Errorf("invalid status: %q", r.Status)
	}
	return nil
}

// RoomKey identifies a RoomDayRecord.
type RoomKey struct {
	Location string
	Date     string
	Room     string
}

const keySeparator = "|"

func NewRoomKey(location string, date time.Time, room string) RoomKey {
	return RoomKey{Location: location, Date: date.Format(constants.DayLayout), Room: room}
}

func (k RoomKey) String() string {
	return k.Location + keySeparator + k.Date + keySeparator + k.Room
}

// ParseRoomKey splits a location|date|room key.
func ParseRoomKey(s string) (RoomKey, error) {
	parts := strings.Split(s, keySeparator)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return RoomKey{}, fmt.Errorf("invalid room key %q", s)
	}
	return RoomKey{Location: parts[0], Date: parts[1], Room: parts[2]}, nil
}

// RoomBoard maps location|date|room keys to records. It is persisted wholesale.
type RoomBoard map[string]RoomDayRecord

// Clone copies the board so callers can mutate it freely.
func (b RoomBoard) Clone() RoomBoard {
	out := make(RoomBoard, len(b))
	for k, v := range b {
		if v.OccupiedUntil != nil {
			until := *v.OccupiedUntil
			v.OccupiedUntil = &until
		}
		out[k] = v
	}
	return out
}

// Get returns the record at key or the empty default.
func (b RoomBoard) Get(key RoomKey) RoomDayRecord {
	if rec, ok := b[key.String()]; ok {
		return rec
	}
	return EmptyRecord()
}

// DaySummary counts rooms per status for one location and date.
type DaySummary struct {
	Empty    int `json:"empty"`
	Occupied int `json:"occupied"`
	CheckIn  int `json:"checkIn"`
	Dirty    int `json:"dirty"`
}

func (s *DaySummary) Add(status RoomStatus) {
	switch status {
	case RoomStatusOccupied:
		s.Occupied++
	case RoomStatusCheckIn:
		s.CheckIn++
	case RoomStatusDirty:
		s.Dirty++
	default:
		s.Empty++
	}
}
