package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quote is the persisted record of one optimization outcome: the inputs
// that were quoted and the summary figures the dashboard shows. The full
// arrangement list is recomputable from the inputs (the engine is
// deterministic) and is not stored.
//
// @Description Persisted quote: inputs plus the optimization summary
type Quote struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	// Reference is the human-facing quote number
	Reference string           `bson:"reference" json:"reference" example:"Q-3F2A9C1B"`
	Requests  []ProductRequest `bson:"requests" json:"requests"`
	Container Container        `bson:"container" json:"container"`
	Pallet    PalletTemplate   `bson:"pallet" json:"pallet"`
	Summary   OptimizationSummary `bson:"summary" json:"summary"`
	// Note is free-form text the requester attached
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
