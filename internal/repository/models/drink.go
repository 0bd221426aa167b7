package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Ingredient is a recipe entry embedded in a drink document
type Ingredient struct {
	Name  string `bson:"name"`
	Color string `bson:"color"`
	Parts int    `bson:"parts"`
}

// Drink is the document stored in the drinks collection
type Drink struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Recipe []Ingredient       `bson:"recipe"`
}
