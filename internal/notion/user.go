package notion

import (
	"github.com/tidwall/gjson"
)

// Author is the person recorded in a page's "Author" property.
type Author struct {
	ID        string
	Name      string
	AvatarURL string
	Email     string
	UserType  string
}

// newAuthor reads the "Author" property out of a page's properties object.
func newAuthor(properties gjson.Result) (Author, error) {
	payload, err := TaggedPayload(properties, "Author")
	if err != nil {
		return Author{}, err
	}
	if payload.IsArray() {
		people := payload.Array()
		if len(people) == 0 {
			return Author{}, missingField("Author")
		}
		payload = people[0]
	}

	user, err := newUser(payload)
	if err != nil {
		return Author{}, err
	}

	person := payload.Get("person")
	if !person.Exists() {
		return Author{}, missingField("person")
	}
	email, err := String(person, "email")
	if err != nil {
		return Author{}, err
	}

	return Author{
		ID:        user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Email:     email,
		UserType:  user.Type,
	}, nil
}

// User is a workspace member or bot as returned by users/{id}.
type User struct {
	ID        string
	Name      string
	AvatarURL string
	Type      string
	// Email is empty for bots.
	Email string
}

var _ decoder = (*User)(nil)

func (u *User) FromJSON(node gjson.Result) error {
	user, err := newUser(node)
	if err != nil {
		return err
	}
	user.Email = optionalString(node.Get("person"), "email")
	*u = user
	return nil
}

func newUser(node gjson.Result) (User, error) {
	id, err := String(node, "id")
	if err != nil {
		return User{}, err
	}
	name, err := String(node, "name")
	if err != nil {
		return User{}, err
	}
	avatar, err := nullableString(node, "avatar_url")
	if err != nil {
		return User{}, err
	}
	kind, err := String(node, "type")
	if err != nil {
		return User{}, err
	}

	return User{
		ID:        id,
		Name:      name,
		AvatarURL: avatar,
		Type:      kind,
	}, nil
}

// nullableString is String that also accepts an explicit null as "".
func nullableString(node gjson.Result, key string) (string, error) {
	if value := node.Get(gjson.Escape(key)); value.Exists() && value.Type == gjson.Null {
		return "", nil
	}
	return String(node, key)
}
