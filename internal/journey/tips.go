package journey

// Trip facts a tip rule can look at.
type tripFacts struct {
	distanceKm     float64
	drivingMinutes int
	hour           int
}

type tipRule struct {
	applies func(tripFacts) bool
	tips    []string
}

var (
	longDistanceTips = []string{
		"🚗 Long journey ahead - Ensure your vehicle is in good condition before departure",
		"⛽ Check fuel level and plan refueling stops along the route",
		"🛌 Take breaks every 2 hours to avoid fatigue",
	}
	moderateDistanceTips = []string{
		"🚗 Moderate distance - Check your fuel level before starting",
		"☕ Consider a rest stop if you feel tired",
	}
	shortDistanceTips = []string{
		"🚶 Short distance - Walking or cycling could be a healthy alternative",
	}
	longDurationTips = []string{
		"⏰ Journey exceeds 3 hours - Plan for meal breaks",
		"📱 Inform someone about your travel plans and estimated arrival time",
	}
	generalTips = []string{
		"🔒 Always wear your seatbelt and ensure all passengers do the same",
		"📵 Avoid using your phone while driving - pull over if you need to make a call",
		"🌦️ Check weather conditions before you travel",
		"🚦 Obey all traffic rules and speed limits",
		"💼 Keep emergency contacts and important documents handy",
		"🔦 Travel during daylight hours when possible for better visibility",
	}
	nightTips = []string{
		"🌙 Night travel - Be extra cautious and ensure your vehicle lights are working",
	}
	closingTips = []string{
		"🏥 Know the location of hospitals or emergency services along your route",
		"💧 Stay hydrated and carry water, especially for long trips",
	}
)

func always(tripFacts) bool { return true }

// tipRules is evaluated top to bottom and the output keeps this order.
// The three distance tiers are mutually exclusive.
var tipRules = []tipRule{
	{
		applies: func(f tripFacts) bool { return f.distanceKm > 100 },
		tips:    longDistanceTips,
	},
	{
		applies: func(f tripFacts) bool { return f.distanceKm > 50 && f.distanceKm <= 100 },
		tips:    moderateDistanceTips,
	},
	{
		applies: func(f tripFacts) bool { return f.distanceKm < 5 },
		tips:    shortDistanceTips,
	},
	{
		applies: func(f tripFacts) bool { return f.drivingMinutes > 180 },
		tips:    longDurationTips,
	},
	{applies: always, tips: generalTips},
	{
		applies: func(f tripFacts) bool { return f.hour >= 20 || f.hour <= 5 },
		tips:    nightTips,
	},
	{applies: always, tips: closingTips},
}

// SafetyTips returns the advisory strings for a trip, in rule order.
// hour is the 0-23 wall-clock hour used for the night travel rule.
func SafetyTips(distanceKm float64, drivingMinutes int, hour int) []string {
	facts := tripFacts{distanceKm: distanceKm, drivingMinutes: drivingMinutes, hour: hour}

	var tips []string
	for _, rule := range tipRules {
		if rule.applies(facts) {
			tips = append(tips, rule.tips...)
		}
	}
	return tips
}
