package users

import (
	"testing"

	"gopkg.in/mgo.v2/bson"
)

func TestTokenRoundtrip(t *testing.T) {
	id := bson.NewObjectId()

	signed, err := SignToken(id, "test-secret", 1)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(signed, "test-secret")
	if err != nil {
		t.Fatal(err)
	}

	if claims.UserID != id.Hex() {
		t.Errorf("expected user id %s, got %s", id.Hex(), claims.UserID)
	}

	if claims.Issuer != "mirador" {
		t.Errorf("unexpected issuer %q", claims.Issuer)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	signed, err := SignToken(bson.NewObjectId(), "test-secret", 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(signed, "other-secret"); err == nil {
		t.Error("expected a verification error")
	}
}

func TestProfileProjection(t *testing.T) {
	usr := User{
		Id:          bson.NewObjectId(),
		UserName:    "fernanda",
		Password:    "hashed",
		Email:       "fernanda@mirador.test",
		Description: "hill walker",
	}

	profile := usr.Profile()

	if profile.UserName != "fernanda" {
		t.Errorf("unexpected username %q", profile.UserName)
	}

	if profile.Description != "hill walker" {
		t.Errorf("unexpected description %q", profile.Description)
	}
}
