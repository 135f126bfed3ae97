package gamesheet

import "encoding/json"

// Wire shapes of the JSON:API schedule response. Pointers mark fields whose
// absence must be told apart from their zero value.

type scheduleResponse struct {
	Included *[]json.RawMessage `json:"included"`
}

type recordHead struct {
	Type string `json:"type"`
}

type teamWire struct {
	ID         *string             `json:"id"`
	Attributes *teamAttributesWire `json:"attributes"`
}

type teamAttributesWire struct {
	Title *string `json:"title"`
}

type gameWire struct {
	ID            *string                `json:"id"`
	Attributes    *gameAttributesWire    `json:"attributes"`
	Relationships *gameRelationshipsWire `json:"relationships"`
}

type gameAttributesWire struct {
	ScheduledStartTime *string `json:"scheduled_start_time"`
	Location           *string `json:"location"`
}

type gameRelationshipsWire struct {
	HomeTeam    *relationshipWire `json:"home_team"`
	VisitorTeam *relationshipWire `json:"visitor_team"`
}

type relationshipWire struct {
	Data *resourceIdentifierWire `json:"data"`
}

type resourceIdentifierWire struct {
	ID *string `json:"id"`
}

func (r *relationshipWire) id() string {
	if r == nil || r.Data == nil || r.Data.ID == nil {
		return ""
	}
	return *r.Data.ID
}
