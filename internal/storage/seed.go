package storage

import (
	"context"

	"github.com/devfolio/devfolio/internal/model"
)

// SeedProjectCount is the number of projects created at startup.
const SeedProjectCount = 3

// seedProjects inserts the default demo projects. Called once from New,
// before the store is shared, so it takes the lock per create like any
// other caller.
func (s *Store) seedProjects() {
	ctx := context.Background()
	for _, input := range defaultProjects() {
		_, _ = s.CreateProject(ctx, input)
	}
}

func defaultProjects() []model.ProjectInput {
	published := true
	return []model.ProjectInput{
		{
			Title:       "CIBIL Score Predictor",
			Description: "An AI/ML-based model to predict CIBIL scores for unregistered small businesses, providing financial institutions with valuable insights for evaluating creditworthiness.",
			Image:       "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			AltText:     "CIBIL Score Predictor for Small Businesses",
			Tag:         "Machine Learning",
			Technologies: []string{
				"Python", "scikit-learn", "Pandas", "React.js", "MongoDB",
			},
			Features: []string{
				"AI/ML algorithms to predict creditworthiness for unregistered businesses",
				"Data preprocessing and feature engineering for accurate prediction",
				"User-friendly React.js interface for inputting business financials",
				"Secure data storage and management with MongoDB",
				"Linear regression and random forest algorithms implementation",
			},
			DemoLink:  "https://cibilpredictor.app",
			CodeLink:  "https://github.com/yashnk104/Credit_score",
			Published: &published,
		},
		{
			Title:       "Stock Price Predictor",
			Description: "A stock price prediction application leveraging LSTM neural networks and historical financial data to forecast market trends with impressive 85% accuracy.",
			Image:       "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			AltText:     "Stock Price Predictor Application",
			Tag:         "Data Science",
			Technologies: []string{
				"Python", "Streamlit", "LSTM Neural Networks", "Matplotlib", "Seaborn",
			},
			Features: []string{
				"85% accuracy in forecasting short-term stock price trends",
				"Real-time financial data integration from market APIs",
				"Interactive data visualization with Matplotlib and Seaborn",
				"Enhanced user engagement through intuitive interface design",
				"Historical data analysis for pattern recognition",
			},
			DemoLink:  "https://stockpredictor.app",
			CodeLink:  "https://github.com/yashnk104/stock-predictor",
			Published: &published,
		},
		{
			Title:       "Graph Visualizer",
			Description: "An interactive graph algorithm visualization tool combining advanced data structures with a modern React.js frontend to deliver both educational value and powerful computational capabilities.",
			Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			AltText:     "Graph Algorithm Visualizer",
			Tag:         "Web Application",
			Technologies: []string{
				"React.js", "Data Structures", "JavaScript", "CSS", "Dijkstra's Algorithm",
			},
			Features: []string{
				"Optimized Dijkstra's algorithm with 1000+ nodes processing in under 100ms",
				"Intuitive drag-and-drop interface for node placement and manipulation",
				"Real-time graph updates and algorithm visualization",
				"Responsive design compatible with various devices",
				"Educational tool for understanding graph-based algorithms",
			},
			DemoLink:  "https://graphvisualizer.app",
			CodeLink:  "https://github.com/yashnk104/graph-visualizer",
			Published: &published,
		},
	}
}
