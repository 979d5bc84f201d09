package catalog

import "github.com/skillswap/skillswap-be/model"

// Default is the built-in community catalog. Slugs are lowercase and URL
// safe; FeedId is the numeric key the chat endpoints use.
var Default = []*model.Community{
	{
		Id:         "tech",
		FeedId:     1,
		Name:       "Tech - Software",
		ColorVar:   "--tech",
		Emoji:      "💻",
		Popularity: 320,
		Subs: []*model.Subcategory{
			{Slug: "programming", Name: "Programming", Skills: []string{"Java", "Python", "JavaScript", "C++"}},
			{Slug: "web", Name: "Web Dev", Skills: []string{"HTML", "CSS", "React", "Django"}},
			{Slug: "db", Name: "Databases", Skills: []string{"MySQL", "MongoDB", "Postgres"}},
		},
	},
	{
		Id:         "diy",
		FeedId:     2,
		Name:       "DIY & Repair",
		ColorVar:   "--diy",
		Emoji:      "🔧",
		Popularity: 160,
		Subs: []*model.Subcategory{
			{Slug: "electronics", Name: "Electronics", Skills: []string{"Laptop Repair", "Soldering"}},
			{Slug: "furniture", Name: "Furniture", Skills: []string{"Woodwork", "Assembly"}},
		},
	},
	{
		Id:         "cooking",
		FeedId:     3,
		Name:       "Cooking & Baking",
		ColorVar:   "--cooking",
		Emoji:      "🍳",
		Popularity: 210,
		Subs: []*model.Subcategory{
			{Slug: "baking", Name: "Baking", Skills: []string{"Bread", "Cakes", "Cookies"}},
			{Slug: "curry", Name: "Spicy & Curries", Skills: []string{"Indian Curries", "Thai"}},
		},
	},
	{
		Id:         "art",
		FeedId:     4,
		Name:       "Art & Non-Tech",
		ColorVar:   "--nontech",
		Emoji:      "🎨",
		Popularity: 110,
		Subs: []*model.Subcategory{
			{Slug: "design", Name: "Design", Skills: []string{"Graphic Design", "Photoshop"}},
			{Slug: "music", Name: "Music", Skills: []string{"Guitar", "Piano"}},
		},
	},
	{
		Id:         "edu",
		FeedId:     5,
		Name:       "Education & Tutoring",
		ColorVar:   "--education",
		Emoji:      "📚",
		Popularity: 90,
		Subs: []*model.Subcategory{
			{Slug: "languages", Name: "Languages", Skills: []string{"English", "Spanish"}},
			{Slug: "math", Name: "Math Help", Skills: []string{"Algebra", "Calculus"}},
		},
	},
}
