// Package baseline provides naive boosted-node-set selection
// strategies to compare against PR-IMM/SA-IMM: MaxDegree and PageRank
// rank candidates by a cheap static score and take the top k, while
// Greedy runs a brute-force approach of actually resimulating the
// cascade for every candidate at every round.
package baseline
