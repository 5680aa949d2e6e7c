package store

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func TestCursorRoundTrip(t *testing.T) {
	key := map[string]*dynamodb.AttributeValue{
		"id": {S: aws.String("hotel-42")},
	}

	cursor, err := encodeCursor(key)
	if err != nil {
		t.Fatalf("encodeCursor: %v", err)
	}
	if _, err := url.QueryUnescape(cursor); err != nil {
		t.Fatalf("cursor is not URL-safe: %v", err)
	}

	decoded, err := decodeCursor(cursor)
	if err != nil {
		t.Fatalf("decodeCursor: %v", err)
	}
	got, ok := decoded["id"]
	if !ok || got.S == nil || *got.S != "hotel-42" {
		t.Errorf("decoded key = %v, want id=hotel-42", decoded)
	}
}

func TestDecodeCursor_RejectsGarbage(t *testing.T) {
	for _, cursor := range []string{"%zz", "not-json"} {
		if _, err := decodeCursor(cursor); err == nil {
			t.Errorf("decodeCursor(%q) should fail", cursor)
		}
	}
}

func TestListCursorError(t *testing.T) {
	r := &DynamoReader{TableName: "hotels"}
	_, _, err := r.List(context.Background(), "not-json")
	if err == nil {
		t.Fatal("List with a bad cursor should fail before hitting the table")
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("err = %v, want ErrStoreUnavailable", err)
	}
	if !strings.Contains(err.Error(), "bad page cursor") {
		t.Errorf("err = %v, want bad page cursor", err)
	}
}
