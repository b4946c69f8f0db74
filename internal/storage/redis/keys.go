package redis

// Key prefix for all tryout data
const keyPrefix = "tryouts"

// The persisted layout is four flat keys, each holding one JSON value:
// the current session, the user collection, the ordered player sequence
// and the sport catalog.

func sessionKey() string {
	return keyPrefix + ":user"
}

func usersKey() string {
	return keyPrefix + ":users"
}

func playersKey() string {
	return keyPrefix + ":players"
}

func sportsKey() string {
	return keyPrefix + ":sports"
}
