package validate

// CreateUser is the rule table for account creation.
var CreateUser = Rules{
	{Field: "firstName", Predicate: Text, Message: `Please provide a value for "firstName"`},
	{Field: "lastName", Predicate: Text, Message: `Please provide a value for "lastName"`},
	{Field: "emailAddress", Predicate: Text, Message: `Please provide a value for "emailAddress"`},
	{Field: "emailAddress", Predicate: Email, Message: "Please provide a valid email address"},
	{Field: "password", Predicate: Text, Message: `Please provide a value for "password"`},
}

// CreateCourse is the rule table for course creation.
var CreateCourse = Rules{
	{Field: "title", Predicate: Text, Message: `Please provide a value for "title"`},
	{Field: "description", Predicate: Text, Message: `Please provide text for "description"`},
	{Field: "estimatedTime", Predicate: OptionalText, Message: `Please provide text for "estimatedTime"`},
	{Field: "materialsNeeded", Predicate: OptionalText, Message: `Please provide text for "materialsNeeded"`},
}

// UpdateCourse is the rule table for course updates.
var UpdateCourse = Rules{
	{Field: "title", Predicate: Text, Message: `Please provide a value for "title"`},
	{Field: "description", Predicate: Text, Message: `Please provide a value for "description"`},
	{Field: "userId", Predicate: Present, Message: `Please provide a value for "userId"`},
	{Field: "estimatedTime", Predicate: OptionalText, Message: `Please provide text for "estimatedTime"`},
	{Field: "materialsNeeded", Predicate: OptionalText, Message: `Please provide text for "materialsNeeded"`},
}
