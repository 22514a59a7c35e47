package service

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
)

var funcs = template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}

var searchQueryPrompt = template.Must(template.New("search_query").Funcs(funcs).Parse(
	`You are an assistant that extracts structured information from search queries for shortlet apartments.

Identify the following from the user's query:
- location: the desired location of the shortlet.
- min_price and max_price: the price range per night.
- guests: the number of guests the shortlet should accommodate.
- amenities: the desired amenities.

User query:
{{.Query}}

If a piece of information cannot be found, omit it. Do not assume.
If the user gives a range such as "500 to 700", set both min_price and max_price.
Never include currency symbols such as "$", "£" or "₦" in prices.
Only include an amenity the user explicitly asks for.
`))

var descriptionPrompt = template.Must(template.New("description").Funcs(funcs).Parse(
	`You are a real estate copywriter writing compelling descriptions for short-term rentals.

Using the key features below, write an engaging description that highlights the property's best aspects.

Property Type: {{.PropertyType}}
Location: {{.Location}}
Number of Bedrooms: {{.NumberOfBedrooms}}
Number of Bathrooms: {{.NumberOfBathrooms}}
Amenities: {{join .Amenities}}
Unique Selling Points: {{join .UniqueSellingPoints}}

Return only the description text, with no label, prefix or suffix.
`))

var recommendationPrompt = template.Must(template.New("recommendation").Funcs(funcs).Parse(
	`You are an expert recommendation system for shortlet apartments.

Based on the apartment the user is viewing, recommend other apartments that are similar.
Consider location, price, number of guests, amenities and description.
Give every recommendation a similarity_score between 0 and 1.

Apartment Features:
Location: {{.Location}}
Price: {{.Price}}
Number of Guests: {{.NumberOfGuests}}
Amenities: {{join .Amenities}}
Description: {{.Description}}
`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", tmpl.Name(), err)
	}

	return buf.String(), nil
}

func stringList(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Description: description,
		Items:       &genai.Schema{Type: genai.TypeString},
	}
}

var searchQuerySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"location":  {Type: genai.TypeString, Description: "The desired location of the shortlet."},
		"min_price": {Type: genai.TypeNumber, Description: "The minimum price per night."},
		"max_price": {Type: genai.TypeNumber, Description: "The maximum price per night."},
		"guests":    {Type: genai.TypeInteger, Description: "The number of guests to accommodate."},
		"amenities": stringList("The desired amenities."),
	},
}

var descriptionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"description": {Type: genai.TypeString, Description: "A compelling description of the property."},
	},
	Required: []string{"description"},
}

var recommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendations": {
			Type:        genai.TypeArray,
			Description: "Apartments similar to the input apartment.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"location":         {Type: genai.TypeString},
					"price":            {Type: genai.TypeNumber, Description: "Price per night."},
					"number_of_guests": {Type: genai.TypeInteger},
					"amenities":        stringList("Amenities offered."),
					"description":      {Type: genai.TypeString},
					"similarity_score": {Type: genai.TypeNumber, Description: "Similarity to the input apartment, from 0 to 1."},
				},
				Required: []string{"location", "price", "number_of_guests", "amenities", "description", "similarity_score"},
			},
		},
	},
	Required: []string{"recommendations"},
}
