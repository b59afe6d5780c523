// Package schema declares the model snapshot table stored by internal/store.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ModelSnapshot is one trained model kept for restore without retraining.
type ModelSnapshot struct {
	ent.Schema
}

func (ModelSnapshot) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "model_snapshots"},
	}
}

func (ModelSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing save number, never reused after a prune"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC time the model was saved"),
		field.String("format_version").
			NotEmpty().
			Comment("Semantic version of the encoded model layout"),
		field.String("source").
			Comment("Dataset the model was trained on"),
		field.Bytes("data").
			NotEmpty().
			Comment("JSON encoded vectorizer, classifier and label encoding"),
	}
}
