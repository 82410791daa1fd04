package generator

// Name corpora for synthetic records. Loosely drawn from common NZ given and
// family names so generated rosters read plausibly in the UI.
var firstNames = []string{
	"Aiden", "Amelia", "Anahera", "Aria", "Ava", "Beau", "Bella", "Charlie",
	"Charlotte", "Cooper", "Elijah", "Ella", "Emily", "Ethan", "George",
	"Grace", "Harper", "Harrison", "Hazel", "Hemi", "Hunter", "Isla", "Jack",
	"James", "Kauri", "Leo", "Liam", "Lily", "Lucas", "Maia", "Mason", "Mia",
	"Mila", "Nikau", "Noah", "Oliver", "Olivia", "Ruby", "Sophie", "Thomas",
	"Tane", "William", "Willow", "Zoe",
}

var lastNames = []string{
	"Anderson", "Baker", "Bell", "Brown", "Campbell", "Clark", "Collins",
	"Davis", "Edwards", "Evans", "Harris", "Henare", "Hill", "Jackson",
	"Johnson", "Jones", "Kaur", "Kelly", "King", "Lee", "Martin", "Mitchell",
	"Moore", "Ngata", "Parata", "Parker", "Patel", "Rangi", "Reid", "Robinson",
	"Scott", "Singh", "Smith", "Stewart", "Taylor", "Thompson", "Turner",
	"Walker", "Watson", "White", "Williams", "Wilson", "Wood", "Wright",
}
