package seed

// Demo GED Test Prep course, four categories with five questions each.

var demoLessons = []lessonSeed{
	{
		Title:    "Introduction to GED Math",
		Content:  "This lesson covers the fundamentals of GED Mathematics including basic arithmetic, fractions, decimals, and percentages. The GED Math test assesses your ability to solve real-world problems using mathematical reasoning.",
		Duration: 30,
	},
	{
		Title:    "Algebra Basics",
		Content:  "Learn the essentials of algebra for the GED test. Topics include variables, expressions, equations, and inequalities. Understanding algebra is crucial for approximately 55% of the GED Math questions.",
		Duration: 45,
	},
	{
		Title:    "Reading Comprehension Strategies",
		Content:  "Master reading comprehension techniques for the GED Reasoning Through Language Arts test. Learn how to identify main ideas, make inferences, and analyze author's purpose and tone.",
		Duration: 40,
	},
	{
		Title:    "Science Data Analysis",
		Content:  "Develop skills to interpret scientific data, graphs, and charts. The GED Science test focuses on your ability to understand and apply scientific concepts rather than memorizing facts.",
		Duration: 35,
	},
	{
		Title:    "Social Studies: US History & Government",
		Content:  "Review key concepts in US History, Civics, and Government for the GED Social Studies test. Learn about the Constitution, branches of government, and major historical events.",
		Duration: 50,
	},
}

var demoFlashcards = []flashcardSeed{
	{Category: "Math", Front: "What is the order of operations?", Back: "PEMDAS: Parentheses, Exponents, Multiplication/Division (left to right), Addition/Subtraction (left to right)"},
	{Category: "Math", Front: "How do you convert a fraction to a decimal?", Back: "Divide the numerator by the denominator. Example: 3/4 = 3 ÷ 4 = 0.75"},
	{Category: "Math", Front: "What is the slope formula?", Back: "m = (y₂ - y₁) / (x₂ - x₁) - Rise over Run"},
	{Category: "Math", Front: "What is the Pythagorean theorem?", Back: "a² + b² = c², where c is the hypotenuse of a right triangle"},
	{Category: "Math", Front: "How do you find the area of a circle?", Back: "A = πr², where r is the radius"},
	{Category: "Math", Front: "What is the quadratic formula?", Back: "x = (-b ± √(b² - 4ac)) / 2a"},
	{Category: "Reading", Front: "What is the main idea of a passage?", Back: "The central point or most important concept the author wants to communicate"},
	{Category: "Reading", Front: "What is an inference?", Back: "A conclusion reached based on evidence and reasoning from the text, not directly stated"},
	{Category: "Reading", Front: "What is tone in writing?", Back: "The author's attitude toward the subject, conveyed through word choice and style"},
	{Category: "Reading", Front: "What is the difference between fact and opinion?", Back: "Facts can be proven true or false; opinions are personal beliefs or judgments"},
	{Category: "Reading", Front: "What are context clues?", Back: "Words or phrases near an unfamiliar word that help you understand its meaning"},
	{Category: "Reading", Front: "What is author's purpose?", Back: "The reason an author writes: to inform, persuade, entertain, or explain"},
	{Category: "Science", Front: "What is the scientific method?", Back: "Observation → Question → Hypothesis → Experiment → Analysis → Conclusion"},
	{Category: "Science", Front: "What is photosynthesis?", Back: "Process where plants convert sunlight, water, and CO₂ into glucose and oxygen"},
	{Category: "Science", Front: "What is the difference between mitosis and meiosis?", Back: "Mitosis produces 2 identical cells; meiosis produces 4 genetically different sex cells"},
	{Category: "Science", Front: "What is Newton's First Law?", Back: "An object at rest stays at rest, and an object in motion stays in motion unless acted upon by an external force"},
	{Category: "Science", Front: "What is the pH scale?", Back: "Measures acidity/alkalinity: 0-6 acidic, 7 neutral, 8-14 basic/alkaline"},
	{Category: "Science", Front: "What is an ecosystem?", Back: "A community of living organisms interacting with their physical environment"},
	{Category: "Social Studies", Front: "What are the three branches of US government?", Back: "Legislative (Congress), Executive (President), Judicial (Supreme Court)"},
	{Category: "Social Studies", Front: "What is the Bill of Rights?", Back: "The first 10 amendments to the US Constitution, guaranteeing individual freedoms"},
	{Category: "Social Studies", Front: "What was the Civil Rights Movement?", Back: "A struggle for social justice in the 1950s-60s to end racial segregation and discrimination"},
	{Category: "Social Studies", Front: "What is supply and demand?", Back: "Economic principle: price rises when demand exceeds supply, falls when supply exceeds demand"},
	{Category: "Social Studies", Front: "What is the Electoral College?", Back: "A body of 538 electors who formally elect the President; 270 votes needed to win"},
	{Category: "Social Studies", Front: "What caused the Great Depression?", Back: "Stock market crash of 1929, bank failures, reduced spending, and poor monetary policy"},
}

var demoTests = []testSeed{
	{
		Title:                "GED Math Practice Test",
		Description:          "Practice test covering algebra, geometry, data analysis, and number operations",
		TimeLimit:            45,
		PassingScore:         70,
		QuestionsPerCategory: 5,
	},
	{
		Title:                "GED Reading Practice Test",
		Description:          "Reading comprehension test with passages and analysis questions",
		TimeLimit:            35,
		PassingScore:         70,
		QuestionsPerCategory: 5,
	},
	{
		Title:                "GED Science Practice Test",
		Description:          "Science reasoning test covering life science, physical science, and earth science",
		TimeLimit:            40,
		PassingScore:         70,
		QuestionsPerCategory: 5,
	},
}

var demoQuestions = []questionSeed{
	{Category: "Math", Question: "Solve for x: 2x + 5 = 13", OptionA: "x = 4", OptionB: "x = 6", OptionC: "x = 8", OptionD: "x = 9", CorrectAnswer: "A"},
	{Category: "Math", Question: "What is 25% of 80?", OptionA: "15", OptionB: "20", OptionC: "25", OptionD: "30", CorrectAnswer: "B"},
	{Category: "Math", Question: "If a rectangle has length 8 and width 5, what is its area?", OptionA: "13", OptionB: "26", OptionC: "40", OptionD: "45", CorrectAnswer: "C"},
	{Category: "Math", Question: "Simplify: 3(x + 4) - 2x", OptionA: "x + 12", OptionB: "x + 4", OptionC: "5x + 4", OptionD: "5x + 12", CorrectAnswer: "A"},
	{Category: "Math", Question: "What is the slope of the line passing through points (2, 3) and (4, 7)?", OptionA: "1", OptionB: "2", OptionC: "3", OptionD: "4", CorrectAnswer: "B"},
	{Category: "Reading", Question: "When identifying the main idea, you should look for:", OptionA: "The first sentence only", OptionB: "The longest paragraph", OptionC: "The central message supported throughout", OptionD: "Proper nouns", CorrectAnswer: "C"},
	{Category: "Reading", Question: "An inference is best described as:", OptionA: "A direct quote from the text", OptionB: "The author's biography", OptionC: "A logical conclusion based on evidence", OptionD: "A summary of the passage", CorrectAnswer: "C"},
	{Category: "Reading", Question: "Which word signals a contrast in writing?", OptionA: "Furthermore", OptionB: "However", OptionC: "Additionally", OptionD: "Similarly", CorrectAnswer: "B"},
	{Category: "Reading", Question: "Author's purpose to convince readers is called:", OptionA: "Inform", OptionB: "Entertain", OptionC: "Persuade", OptionD: "Describe", CorrectAnswer: "C"},
	{Category: "Reading", Question: "Context clues help readers:", OptionA: "Find page numbers", OptionB: "Understand unfamiliar words", OptionC: "Skip difficult sections", OptionD: "Memorize vocabulary", CorrectAnswer: "B"},
	{Category: "Science", Question: "Which step comes first in the scientific method?", OptionA: "Experiment", OptionB: "Hypothesis", OptionC: "Observation", OptionD: "Conclusion", CorrectAnswer: "C"},
	{Category: "Science", Question: "What gas do plants release during photosynthesis?", OptionA: "Carbon dioxide", OptionB: "Nitrogen", OptionC: "Oxygen", OptionD: "Hydrogen", CorrectAnswer: "C"},
	{Category: "Science", Question: "A pH of 3 indicates a substance is:", OptionA: "Neutral", OptionB: "Basic", OptionC: "Acidic", OptionD: "Alkaline", CorrectAnswer: "C"},
	{Category: "Science", Question: "What type of cell division produces sex cells?", OptionA: "Mitosis", OptionB: "Meiosis", OptionC: "Binary fission", OptionD: "Budding", CorrectAnswer: "B"},
	{Category: "Science", Question: "Newton's First Law is also known as the law of:", OptionA: "Acceleration", OptionB: "Gravity", OptionC: "Inertia", OptionD: "Reaction", CorrectAnswer: "C"},
	{Category: "Social Studies", Question: "Which branch of government interprets laws?", OptionA: "Legislative", OptionB: "Executive", OptionC: "Judicial", OptionD: "Administrative", CorrectAnswer: "C"},
	{Category: "Social Studies", Question: "How many amendments are in the Bill of Rights?", OptionA: "5", OptionB: "10", OptionC: "15", OptionD: "20", CorrectAnswer: "B"},
	{Category: "Social Studies", Question: "The stock market crash that started the Great Depression occurred in:", OptionA: "1919", OptionB: "1929", OptionC: "1939", OptionD: "1949", CorrectAnswer: "B"},
	{Category: "Social Studies", Question: "How many electoral votes are needed to win the presidency?", OptionA: "250", OptionB: "270", OptionC: "290", OptionD: "310", CorrectAnswer: "B"},
	{Category: "Social Studies", Question: "The Civil Rights Act of 1964 primarily addressed:", OptionA: "Women's suffrage", OptionB: "Child labor", OptionC: "Racial discrimination", OptionD: "Immigration", CorrectAnswer: "C"},
}
