package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors in hand-edited files:
// missing quotes around keys, single quotes, unclosed brackets, trailing
// commas, comments.
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}

// ParseHJSONToStruct parses Human-friendly JSON (Hjson) directly into a Go
// struct. Hjson allows comments, unquoted keys, optional commas, and
// multiline strings, which suits analyst-authored deal files.
func ParseHJSONToStruct(hjsonData []byte, schema interface{}) error {
	if err := hjson.Unmarshal(hjsonData, schema); err != nil {
		return fmt.Errorf("HJSON_UNMARSHAL_ERROR: %v", err)
	}
	return nil
}

// SmartParse tries multiple parsing strategies to load a JSON-family
// document into schema. Order of attempts:
//  1. Standard JSON parse
//  2. JSON repair
//  3. Hjson parse (most lenient)
func SmartParse(input []byte, schema interface{}) error {
	// Try 1: Standard JSON
	if err := json.Unmarshal(input, schema); err == nil {
		return nil
	}

	// Try 2: JSON repair
	if repaired, err := jsonrepair.RepairJSON(string(input)); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	// Try 3: Hjson
	if err := hjson.Unmarshal(input, schema); err == nil {
		return nil
	}

	return fmt.Errorf("SMART_PARSE_FAILED: all parsing strategies failed for input")
}
