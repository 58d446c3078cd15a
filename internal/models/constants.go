package models

const (
	DefaultPersona = "You are MediChat Pro — an intelligent medical document assistant."

	ContextSeparator = "\n\n"
)

var (
	GroundingPromptTemplate = `%s

Based on the following documents, provide accurate and helpful answers.
Answer primarily from the documents below. If the information is not
contained in them, say so clearly. Cite which document or passage you used.

# Documents
%s

# User Question
%s

# Answer`
)
