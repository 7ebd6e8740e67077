package services

// Default data inserted the first time the store is seen empty. Phrase
// entries reference their category by title here; seeding resolves the
// generated category ids before inserting.

type seedCategory struct {
	Title string
	Icon  string
}

type seedPhrase struct {
	Category      string
	English       string
	Vietnamese    string
	Pronunciation string
}

var defaultCategories = []seedCategory{
	{Title: "Chào hỏi", Icon: "chatbubble-outline"},
	{Title: "Ẩm thực", Icon: "restaurant-outline"},
	{Title: "Du lịch", Icon: "airplane-outline"},
	{Title: "Mua sắm", Icon: "cart-outline"},
}

var defaultPhrases = []seedPhrase{
	{Category: "Chào hỏi", English: "Hello", Vietnamese: "Xin chào", Pronunciation: "sin chow"},
	{Category: "Chào hỏi", English: "Good morning", Vietnamese: "Chào buổi sáng", Pronunciation: "chow boo-ee sang"},
	{Category: "Ẩm thực", English: "I am hungry", Vietnamese: "Tôi đói", Pronunciation: "toy doy"},
	{Category: "Ẩm thực", English: "This is delicious", Vietnamese: "Món này ngon", Pronunciation: "mon nay ngon"},
	{Category: "Du lịch", English: "Where is the airport?", Vietnamese: "Sân bay ở đâu?", Pronunciation: "san bay o dow"},
	{Category: "Mua sắm", English: "How much is it?", Vietnamese: "Bao nhiêu tiền?", Pronunciation: "bow nyew tyen"},
}
