package vision

import (
	"strings"
	"testing"
)

type decodedMeta struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
}

func TestDecodeModelJSONDirect(t *testing.T) {
	var got decodedMeta
	if err := DecodeModelJSON(`{"title":"Sunrise","keywords":["sky"]}`, &got); err != nil {
		t.Fatalf("DecodeModelJSON returned error: %v", err)
	}
	if got.Title != "Sunrise" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestDecodeModelJSONCodeFence(t *testing.T) {
	var got decodedMeta
	payload := "```json\n{\"title\":\"Harbor\",\"keywords\":[\"boat\",\"sea\"]}\n```"
	if err := DecodeModelJSON(payload, &got); err != nil {
		t.Fatalf("DecodeModelJSON returned error: %v", err)
	}
	if got.Title != "Harbor" || len(got.Keywords) != 2 {
		t.Fatalf("unexpected decode result: %+v", got)
	}
}

func TestDecodeModelJSONEmbeddedInProse(t *testing.T) {
	var got decodedMeta
	payload := "Sure! Here is the metadata you asked for:\n{\"title\":\"Meadow\",\"keywords\":[\"grass\"]}\nLet me know if you need anything else."
	if err := DecodeModelJSON(payload, &got); err != nil {
		t.Fatalf("DecodeModelJSON returned error: %v", err)
	}
	if got.Title != "Meadow" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestDecodeModelJSONEmptyPayload(t *testing.T) {
	var got decodedMeta
	if err := DecodeModelJSON("   ", &got); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDecodeModelJSONNoObject(t *testing.T) {
	var got decodedMeta
	err := DecodeModelJSON("no json here at all", &got)
	if err == nil {
		t.Fatal("expected error when no JSON object is present")
	}
	if !strings.Contains(err.Error(), "payload snippet") {
		t.Fatalf("expected snippet in error, got %v", err)
	}
}
