package calculator

var bmiMessages = map[BMICategory]string{
	Underweight: "Your BMI indicates that you are underweight. Consider consulting with a nutritionist.",
	Normal:      "Your BMI indicates that you have a normal weight. Maintain your healthy lifestyle!",
	Overweight:  "Your BMI indicates that you are overweight. Consider increasing physical activity.",
	Obese:       "Your BMI indicates obesity. It is recommended to consult with a healthcare professional.",
}

var bodyFatMessages = map[BodyFatCategory]string{
	Essential: "You are in the essential fat range. This is the minimum needed for basic health.",
	Athletic:  "You're in the athletic range, which is ideal for athletes and fitness models.",
	Fitness:   "You're in the fitness range, which is associated with good health.",
	Average:   "You're in the average range. Reducing body fat may improve health markers.",
}

func BMIMessage(c BMICategory) string {
	if msg, ok := bmiMessages[c]; ok {
		return msg
	}
	return "Invalid BMI category."
}

func BodyFatMessage(c BodyFatCategory) string {
	if msg, ok := bodyFatMessages[c]; ok {
		return msg
	}
	return "Invalid body fat category."
}
