package leetcode

// The practice catalog. Acceptance rates are snapshots, not live data.
var problems = []Problem{
	{ID: 1, Title: "Two Sum", Difficulty: Easy, Acceptance: 49.5, URL: "https://leetcode.com/problems/two-sum/"},
	{ID: 20, Title: "Valid Parentheses", Difficulty: Easy, Acceptance: 40.8, URL: "https://leetcode.com/problems/valid-parentheses/"},
	{ID: 21, Title: "Merge Two Sorted Lists", Difficulty: Easy, Acceptance: 62.1, URL: "https://leetcode.com/problems/merge-two-sorted-lists/"},
	{ID: 26, Title: "Remove Duplicates from Sorted Array", Difficulty: Easy, Acceptance: 52.3, URL: "https://leetcode.com/problems/remove-duplicates-from-sorted-array/"},
	{ID: 27, Title: "Remove Element", Difficulty: Easy, Acceptance: 53.2, URL: "https://leetcode.com/problems/remove-element/"},
	{ID: 53, Title: "Maximum Subarray", Difficulty: Easy, Acceptance: 50.1, URL: "https://leetcode.com/problems/maximum-subarray/"},
	{ID: 66, Title: "Plus One", Difficulty: Easy, Acceptance: 44.3, URL: "https://leetcode.com/problems/plus-one/"},
	{ID: 70, Title: "Climbing Stairs", Difficulty: Easy, Acceptance: 51.7, URL: "https://leetcode.com/problems/climbing-stairs/"},
	{ID: 88, Title: "Merge Sorted Array", Difficulty: Easy, Acceptance: 46.8, URL: "https://leetcode.com/problems/merge-sorted-array/"},
	{ID: 94, Title: "Binary Tree Inorder Traversal", Difficulty: Easy, Acceptance: 74.2, URL: "https://leetcode.com/problems/binary-tree-inorder-traversal/"},
	{ID: 101, Title: "Symmetric Tree", Difficulty: Easy, Acceptance: 54.3, URL: "https://leetcode.com/problems/symmetric-tree/"},
	{ID: 104, Title: "Maximum Depth of Binary Tree", Difficulty: Easy, Acceptance: 73.8, URL: "https://leetcode.com/problems/maximum-depth-of-binary-tree/"},
	{ID: 121, Title: "Best Time to Buy and Sell Stock", Difficulty: Easy, Acceptance: 54.2, URL: "https://leetcode.com/problems/best-time-to-buy-and-sell-stock/"},
	{ID: 125, Title: "Valid Palindrome", Difficulty: Easy, Acceptance: 44.7, URL: "https://leetcode.com/problems/valid-palindrome/"},
	{ID: 136, Title: "Single Number", Difficulty: Easy, Acceptance: 70.1, URL: "https://leetcode.com/problems/single-number/"},
	{ID: 141, Title: "Linked List Cycle", Difficulty: Easy, Acceptance: 48.3, URL: "https://leetcode.com/problems/linked-list-cycle/"},
	{ID: 155, Title: "Min Stack", Difficulty: Easy, Acceptance: 52.1, URL: "https://leetcode.com/problems/min-stack/"},
	{ID: 169, Title: "Majority Element", Difficulty: Easy, Acceptance: 63.8, URL: "https://leetcode.com/problems/majority-element/"},
	{ID: 206, Title: "Reverse Linked List", Difficulty: Easy, Acceptance: 73.5, URL: "https://leetcode.com/problems/reverse-linked-list/"},
	{ID: 217, Title: "Contains Duplicate", Difficulty: Easy, Acceptance: 61.2, URL: "https://leetcode.com/problems/contains-duplicate/"},
	{ID: 226, Title: "Invert Binary Tree", Difficulty: Easy, Acceptance: 74.5, URL: "https://leetcode.com/problems/invert-binary-tree/"},
	{ID: 234, Title: "Palindrome Linked List", Difficulty: Easy, Acceptance: 51.9, URL: "https://leetcode.com/problems/palindrome-linked-list/"},
	{ID: 242, Title: "Valid Anagram", Difficulty: Easy, Acceptance: 63.5, URL: "https://leetcode.com/problems/valid-anagram/"},
	{ID: 268, Title: "Missing Number", Difficulty: Easy, Acceptance: 62.1, URL: "https://leetcode.com/problems/missing-number/"},
	{ID: 283, Title: "Move Zeroes", Difficulty: Easy, Acceptance: 61.3, URL: "https://leetcode.com/problems/move-zeroes/"},
	{ID: 344, Title: "Reverse String", Difficulty: Easy, Acceptance: 78.1, URL: "https://leetcode.com/problems/reverse-string/"},
	{ID: 387, Title: "First Unique Character in a String", Difficulty: Easy, Acceptance: 59.8, URL: "https://leetcode.com/problems/first-unique-character-in-a-string/"},
	{ID: 392, Title: "Is Subsequence", Difficulty: Easy, Acceptance: 54.2, URL: "https://leetcode.com/problems/is-subsequence/"},
	{ID: 404, Title: "Sum of Left Leaves", Difficulty: Easy, Acceptance: 57.3, URL: "https://leetcode.com/problems/sum-of-left-leaves/"},
	{ID: 543, Title: "Diameter of Binary Tree", Difficulty: Easy, Acceptance: 58.1, URL: "https://leetcode.com/problems/diameter-of-binary-tree/"},

	{ID: 2, Title: "Add Two Numbers", Difficulty: Medium, Acceptance: 41.2, URL: "https://leetcode.com/problems/add-two-numbers/"},
	{ID: 3, Title: "Longest Substring Without Repeating Characters", Difficulty: Medium, Acceptance: 34.1, URL: "https://leetcode.com/problems/longest-substring-without-repeating-characters/"},
	{ID: 5, Title: "Longest Palindromic Substring", Difficulty: Medium, Acceptance: 33.2, URL: "https://leetcode.com/problems/longest-palindromic-substring/"},
	{ID: 11, Title: "Container With Most Water", Difficulty: Medium, Acceptance: 54.3, URL: "https://leetcode.com/problems/container-with-most-water/"},
	{ID: 15, Title: "3Sum", Difficulty: Medium, Acceptance: 33.8, URL: "https://leetcode.com/problems/3sum/"},
	{ID: 17, Title: "Letter Combinations of a Phone Number", Difficulty: Medium, Acceptance: 57.8, URL: "https://leetcode.com/problems/letter-combinations-of-a-phone-number/"},
	{ID: 19, Title: "Remove Nth Node From End of List", Difficulty: Medium, Acceptance: 43.1, URL: "https://leetcode.com/problems/remove-nth-node-from-end-of-list/"},
	{ID: 22, Title: "Generate Parentheses", Difficulty: Medium, Acceptance: 73.8, URL: "https://leetcode.com/problems/generate-parentheses/"},
	{ID: 33, Title: "Search in Rotated Sorted Array", Difficulty: Medium, Acceptance: 39.4, URL: "https://leetcode.com/problems/search-in-rotated-sorted-array/"},
	{ID: 39, Title: "Combination Sum", Difficulty: Medium, Acceptance: 70.1, URL: "https://leetcode.com/problems/combination-sum/"},
	{ID: 46, Title: "Permutations", Difficulty: Medium, Acceptance: 77.2, URL: "https://leetcode.com/problems/permutations/"},
	{ID: 48, Title: "Rotate Image", Difficulty: Medium, Acceptance: 72.1, URL: "https://leetcode.com/problems/rotate-image/"},
	{ID: 49, Title: "Group Anagrams", Difficulty: Medium, Acceptance: 67.3, URL: "https://leetcode.com/problems/group-anagrams/"},
	{ID: 56, Title: "Merge Intervals", Difficulty: Medium, Acceptance: 46.8, URL: "https://leetcode.com/problems/merge-intervals/"},
	{ID: 62, Title: "Unique Paths", Difficulty: Medium, Acceptance: 63.2, URL: "https://leetcode.com/problems/unique-paths/"},
	{ID: 75, Title: "Sort Colors", Difficulty: Medium, Acceptance: 60.1, URL: "https://leetcode.com/problems/sort-colors/"},
	{ID: 78, Title: "Subsets", Difficulty: Medium, Acceptance: 76.5, URL: "https://leetcode.com/problems/subsets/"},
	{ID: 79, Title: "Word Search", Difficulty: Medium, Acceptance: 40.3, URL: "https://leetcode.com/problems/word-search/"},
	{ID: 98, Title: "Validate Binary Search Tree", Difficulty: Medium, Acceptance: 32.1, URL: "https://leetcode.com/problems/validate-binary-search-tree/"},
	{ID: 102, Title: "Binary Tree Level Order Traversal", Difficulty: Medium, Acceptance: 65.3, URL: "https://leetcode.com/problems/binary-tree-level-order-traversal/"},
	{ID: 105, Title: "Construct Binary Tree from Preorder and Inorder Traversal", Difficulty: Medium, Acceptance: 62.5, URL: "https://leetcode.com/problems/construct-binary-tree-from-preorder-and-inorder-traversal/"},
	{ID: 128, Title: "Longest Consecutive Sequence", Difficulty: Medium, Acceptance: 48.1, URL: "https://leetcode.com/problems/longest-consecutive-sequence/"},
	{ID: 139, Title: "Word Break", Difficulty: Medium, Acceptance: 46.2, URL: "https://leetcode.com/problems/word-break/"},
	{ID: 146, Title: "LRU Cache", Difficulty: Medium, Acceptance: 42.1, URL: "https://leetcode.com/problems/lru-cache/"},
	{ID: 200, Title: "Number of Islands", Difficulty: Medium, Acceptance: 57.8, URL: "https://leetcode.com/problems/number-of-islands/"},
	{ID: 207, Title: "Course Schedule", Difficulty: Medium, Acceptance: 46.3, URL: "https://leetcode.com/problems/course-schedule/"},
	{ID: 208, Title: "Implement Trie (Prefix Tree)", Difficulty: Medium, Acceptance: 64.2, URL: "https://leetcode.com/problems/implement-trie-prefix-tree/"},
	{ID: 215, Title: "Kth Largest Element in an Array", Difficulty: Medium, Acceptance: 66.8, URL: "https://leetcode.com/problems/kth-largest-element-in-an-array/"},
	{ID: 230, Title: "Kth Smallest Element in a BST", Difficulty: Medium, Acceptance: 71.5, URL: "https://leetcode.com/problems/kth-smallest-element-in-a-bst/"},
	{ID: 236, Title: "Lowest Common Ancestor of a Binary Tree", Difficulty: Medium, Acceptance: 61.3, URL: "https://leetcode.com/problems/lowest-common-ancestor-of-a-binary-tree/"},
	{ID: 238, Title: "Product of Array Except Self", Difficulty: Medium, Acceptance: 65.1, URL: "https://leetcode.com/problems/product-of-array-except-self/"},
	{ID: 287, Title: "Find the Duplicate Number", Difficulty: Medium, Acceptance: 59.3, URL: "https://leetcode.com/problems/find-the-duplicate-number/"},
	{ID: 300, Title: "Longest Increasing Subsequence", Difficulty: Medium, Acceptance: 53.2, URL: "https://leetcode.com/problems/longest-increasing-subsequence/"},
	{ID: 322, Title: "Coin Change", Difficulty: Medium, Acceptance: 43.1, URL: "https://leetcode.com/problems/coin-change/"},
	{ID: 347, Title: "Top K Frequent Elements", Difficulty: Medium, Acceptance: 64.3, URL: "https://leetcode.com/problems/top-k-frequent-elements/"},
	{ID: 416, Title: "Partition Equal Subset Sum", Difficulty: Medium, Acceptance: 47.2, URL: "https://leetcode.com/problems/partition-equal-subset-sum/"},
	{ID: 424, Title: "Longest Repeating Character Replacement", Difficulty: Medium, Acceptance: 52.1, URL: "https://leetcode.com/problems/longest-repeating-character-replacement/"},
	{ID: 435, Title: "Non-overlapping Intervals", Difficulty: Medium, Acceptance: 51.8, URL: "https://leetcode.com/problems/non-overlapping-intervals/"},
	{ID: 438, Title: "Find All Anagrams in a String", Difficulty: Medium, Acceptance: 49.8, URL: "https://leetcode.com/problems/find-all-anagrams-in-a-string/"},
	{ID: 621, Title: "Task Scheduler", Difficulty: Medium, Acceptance: 57.3, URL: "https://leetcode.com/problems/task-scheduler/"},

	{ID: 4, Title: "Median of Two Sorted Arrays", Difficulty: Hard, Acceptance: 37.8, URL: "https://leetcode.com/problems/median-of-two-sorted-arrays/"},
	{ID: 10, Title: "Regular Expression Matching", Difficulty: Hard, Acceptance: 28.1, URL: "https://leetcode.com/problems/regular-expression-matching/"},
	{ID: 23, Title: "Merge k Sorted Lists", Difficulty: Hard, Acceptance: 51.2, URL: "https://leetcode.com/problems/merge-k-sorted-lists/"},
	{ID: 25, Title: "Reverse Nodes in k-Group", Difficulty: Hard, Acceptance: 56.8, URL: "https://leetcode.com/problems/reverse-nodes-in-k-group/"},
	{ID: 32, Title: "Longest Valid Parentheses", Difficulty: Hard, Acceptance: 33.1, URL: "https://leetcode.com/problems/longest-valid-parentheses/"},
	{ID: 37, Title: "Sudoku Solver", Difficulty: Hard, Acceptance: 58.3, URL: "https://leetcode.com/problems/sudoku-solver/"},
	{ID: 41, Title: "First Missing Positive", Difficulty: Hard, Acceptance: 37.2, URL: "https://leetcode.com/problems/first-missing-positive/"},
	{ID: 42, Title: "Trapping Rain Water", Difficulty: Hard, Acceptance: 60.1, URL: "https://leetcode.com/problems/trapping-rain-water/"},
	{ID: 44, Title: "Wildcard Matching", Difficulty: Hard, Acceptance: 27.8, URL: "https://leetcode.com/problems/wildcard-matching/"},
	{ID: 51, Title: "N-Queens", Difficulty: Hard, Acceptance: 66.3, URL: "https://leetcode.com/problems/n-queens/"},
	{ID: 72, Title: "Edit Distance", Difficulty: Hard, Acceptance: 54.2, URL: "https://leetcode.com/problems/edit-distance/"},
	{ID: 76, Title: "Minimum Window Substring", Difficulty: Hard, Acceptance: 41.1, URL: "https://leetcode.com/problems/minimum-window-substring/"},
	{ID: 84, Title: "Largest Rectangle in Histogram", Difficulty: Hard, Acceptance: 43.8, URL: "https://leetcode.com/problems/largest-rectangle-in-histogram/"},
	{ID: 85, Title: "Maximal Rectangle", Difficulty: Hard, Acceptance: 45.3, URL: "https://leetcode.com/problems/maximal-rectangle/"},
	{ID: 124, Title: "Binary Tree Maximum Path Sum", Difficulty: Hard, Acceptance: 39.2, URL: "https://leetcode.com/problems/binary-tree-maximum-path-sum/"},
	{ID: 127, Title: "Word Ladder", Difficulty: Hard, Acceptance: 37.1, URL: "https://leetcode.com/problems/word-ladder/"},
	{ID: 212, Title: "Word Search II", Difficulty: Hard, Acceptance: 37.8, URL: "https://leetcode.com/problems/word-search-ii/"},
	{ID: 239, Title: "Sliding Window Maximum", Difficulty: Hard, Acceptance: 46.3, URL: "https://leetcode.com/problems/sliding-window-maximum/"},
	{ID: 295, Title: "Find Median from Data Stream", Difficulty: Hard, Acceptance: 51.2, URL: "https://leetcode.com/problems/find-median-from-data-stream/"},
	{ID: 297, Title: "Serialize and Deserialize Binary Tree", Difficulty: Hard, Acceptance: 56.1, URL: "https://leetcode.com/problems/serialize-and-deserialize-binary-tree/"},
}
