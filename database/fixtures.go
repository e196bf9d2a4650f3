package database

import "github.com/anjiri1684/exam_portal/models"

func NewFixtureStore() *Store {
	return NewStore(seedUsers(), seedExams())
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "John Student", Email: "student@example.com", Password: "password123"},
		{ID: "2", Name: "Jane Doe", Email: "jane@example.com", Password: "password123"},
	}
}

func seedExams() []models.Exam {
	return []models.Exam{
		{
			ID:          "1",
			Title:       "JavaScript Fundamentals",
			Description: "Test your knowledge of JavaScript basics including variables, functions, and DOM manipulation.",
			Duration:    15,
			Difficulty:  "Easy",
			Subject:     "Programming",
			Questions: []models.Question{
				{
					ID:            "q1",
					QuestionText:  "What is the correct way to declare a variable in JavaScript?",
					Options:       []string{"var myVar;", "variable myVar;", "v myVar;", "declare myVar;"},
					CorrectOption: 0,
				},
				{
					ID:            "q2",
					QuestionText:  "Which method is used to add an element to the end of an array?",
					Options:       []string{"append()", "push()", "add()", "insert()"},
					CorrectOption: 1,
				},
				{
					ID:            "q3",
					QuestionText:  "What does '===' operator do in JavaScript?",
					Options:       []string{"Assigns a value", "Compares values only", "Compares values and types", "Creates a variable"},
					CorrectOption: 2,
				},
				{
					ID:            "q4",
					QuestionText:  "How do you create a function in JavaScript?",
					Options:       []string{"function myFunction() {}", "create myFunction() {}", "def myFunction() {}", "func myFunction() {}"},
					CorrectOption: 0,
				},
				{
					ID:            "q5",
					QuestionText:  "What is the DOM in JavaScript?",
					Options:       []string{"Data Object Model", "Document Object Model", "Dynamic Object Model", "Display Object Model"},
					CorrectOption: 1,
				},
			},
		},
		{
			ID:          "2",
			Title:       "React Development",
			Description: "Assess your understanding of React components, hooks, and state management.",
			Duration:    20,
			Difficulty:  "Medium",
			Subject:     "Web Development",
			Questions: []models.Question{
				{
					ID:            "q6",
					QuestionText:  "What is JSX in React?",
					Options:       []string{"JavaScript XML", "Java Syntax Extension", "JSON XML", "JavaScript Extension"},
					CorrectOption: 0,
				},
				{
					ID:            "q7",
					QuestionText:  "Which hook is used to manage state in functional components?",
					Options:       []string{"useEffect", "useState", "useContext", "useReducer"},
					CorrectOption: 1,
				},
				{
					ID:            "q8",
					QuestionText:  "What is the purpose of useEffect hook?",
					Options:       []string{"To manage state", "To handle side effects", "To create components", "To style components"},
					CorrectOption: 1,
				},
				{
					ID:            "q9",
					QuestionText:  "How do you pass data from parent to child component?",
					Options:       []string{"Through state", "Through props", "Through context", "Through refs"},
					CorrectOption: 1,
				},
				{
					ID:            "q10",
					QuestionText:  "What is the virtual DOM?",
					Options:       []string{"A copy of the real DOM", "A JavaScript representation of the DOM", "A database", "A server"},
					CorrectOption: 1,
				},
			},
		},
		{
			ID:          "3",
			Title:       "Data Structures & Algorithms",
			Description: "Challenge yourself with questions on arrays, linked lists, sorting, and searching algorithms.",
			Duration:    25,
			Difficulty:  "Hard",
			Subject:     "Computer Science",
			Questions: []models.Question{
				{
					ID:            "q11",
					QuestionText:  "What is the time complexity of binary search?",
					Options:       []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
					CorrectOption: 1,
				},
				{
					ID:            "q12",
					QuestionText:  "Which data structure uses LIFO principle?",
					Options:       []string{"Queue", "Stack", "Array", "Linked List"},
					CorrectOption: 1,
				},
				{
					ID:            "q13",
					QuestionText:  "What is the worst-case time complexity of quicksort?",
					Options:       []string{"O(n log n)", "O(n)", "O(n²)", "O(log n)"},
					CorrectOption: 2,
				},
				{
					ID:            "q14",
					QuestionText:  "In a binary tree, what is a leaf node?",
					Options:       []string{"Root node", "Node with no children", "Node with one child", "Node with two children"},
					CorrectOption: 1,
				},
				{
					ID:            "q15",
					QuestionText:  "What does BFS stand for in graph traversal?",
					Options:       []string{"Best First Search", "Breadth First Search", "Binary First Search", "Backward First Search"},
					CorrectOption: 1,
				},
			},
		},
	}
}
