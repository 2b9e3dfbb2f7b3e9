package deps

import (
	"gopkg.in/mgo.v2"
)

func IgniteMongoDB(container Deps) (Deps, error) {
	url, err := container.Config().String("database.url")
	if err != nil {
		return container, err
	}

	name, err := container.Config().String("database.name")
	if err != nil {
		return container, err
	}

	session, err := mgo.Dial(url)
	if err != nil {
		log.Error(err)
		return container, err
	}

	db := session.DB(name)

	// Ensure indexes
	db.C("users").EnsureIndex(
		mgo.Index{
			Key:        []string{"email"},
			Unique:     true,
			Background: true,
		},
	)
	db.C("users").EnsureIndex(
		mgo.Index{
			Key:        []string{"username"},
			Unique:     true,
			Background: true,
		},
	)

	container.DatabaseSessionProvider = session
	container.DatabaseProvider = db

	return container, nil
}
