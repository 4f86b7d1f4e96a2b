// Package striplan implements a STRIPS-style classical planner: operator
// grounding, relaxed-planning-graph construction, h_max/h_add heuristic
// extraction, and forward A* search over ground states. See DomainProblem
// for the collaborator contract a parser (or the bundled domain package)
// must satisfy to drive a Planner.
package striplan
